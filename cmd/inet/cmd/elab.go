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
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"inetlang.org/go/internal/core/debug"
)

func newElabCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elab [files]",
		Short: "print rule patterns as terms",
		Long: `Elab prints the patterns of every rule as the terms an evaluator sees
when it treats their shape as a constructor invocation. Each line holds the
definition name and rule index followed by one term per pattern:

	len[1]: ((Cons _) t)

Constructors become applications of a variable named after the constructor
and wildcards become the variable _.
`,
		RunE: mkRunE(c, runElab),
	}
	addOutFlags(cmd.Flags())
	return cmd
}

func runElab(cmd *Command, args []string) error {
	return withOutput(cmd, func(w io.Writer) error {
		for _, filename := range filesOrStdin(args) {
			b, err := readBook(cmd, filename)
			if err != nil {
				exitOnErr(cmd, err, false)
				continue
			}
			for _, d := range b.Defs {
				name, _ := b.Names.Name(d.ID)
				for i, r := range d.Rules {
					var sb strings.Builder
					fmt.Fprintf(&sb, "%s[%d]:", name, i)
					for _, t := range r.PatternTerms() {
						sb.WriteByte(' ')
						sb.WriteString(debug.TermString(b.Names, t))
					}
					fmt.Fprintln(w, sb.String())
				}
			}
		}
		return nil
	})
}
