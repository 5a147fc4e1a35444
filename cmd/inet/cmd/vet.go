// Copyright 2026 The Inet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/spf13/cobra"

	"inetlang.org/go/internal/core/validate"
)

func newVetCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [files]",
		Short: "report malformed definitions",
		Long: `Vet decodes the given books and reports every violated invariant:
definitions without rules, rules whose arity differs from the rest of their
definition, references to unknown definitions, links without a channel of
the same name in their rule and channels bound more than once.

Vet prints nothing and exits with status 0 if all books are well formed.
`,
		RunE: mkRunE(c, runVet),
	}
	return cmd
}

func runVet(cmd *Command, args []string) error {
	for _, filename := range filesOrStdin(args) {
		b, err := readBook(cmd, filename)
		if err != nil {
			exitOnErr(cmd, err, false)
			continue
		}
		err = validate.Book(b, &validate.Config{AllErrors: true})
		if err != nil {
			exitOnErr(cmd, fileError(displayName(filename), err), false)
		}
	}
	return nil
}
