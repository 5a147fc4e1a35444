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

	"github.com/spf13/cobra"

	"inetlang.org/go/internal/core/debug"
	"inetlang.org/go/internal/encoding/yaml"
	"inetlang.org/go/internal/inetdebug"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [--out text|yaml] [files]",
		Short: "print books in the syntax of the language",
		Long: `Fmt decodes the given books, or standard input if no file is given,
and prints their definitions.

With --out text, the default, each rule is printed on its own line in the
concrete syntax of the language, with a blank line between definitions.
With --out yaml the book is printed in canonical YAML form.

Definitions are printed in the order of the input, or sorted by name with
INET_DEBUG=sortdefs.
`,
		RunE: mkRunE(c, runFmt),
	}

	cmd.Flags().String(string(flagOut), "text", "output format (text|yaml)")
	addOutFlags(cmd.Flags())
	return cmd
}

func runFmt(cmd *Command, args []string) error {
	format := flagOut.String(cmd)
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown output format %q", format)
	}
	files := filesOrStdin(args)
	if format == "yaml" && len(files) > 1 {
		// Books cannot be concatenated as a single YAML mapping without
		// clashing names.
		return fmt.Errorf("--out yaml accepts a single book, got %d", len(files))
	}
	cfg := &debug.Config{SortDefs: inetdebug.Flags.SortDefs}

	return withOutput(cmd, func(w io.Writer) error {
		for i, filename := range files {
			b, err := readBook(cmd, filename)
			exitOnErr(cmd, err, false)
			if err != nil {
				continue
			}
			if i > 0 && len(b.Defs) > 0 {
				fmt.Fprintln(w)
			}
			switch format {
			case "text":
				err = cfg.WriteBook(w, b)
			case "yaml":
				var data []byte
				if data, err = yaml.Encode(b); err == nil {
					_, err = w.Write(data)
				}
			}
			exitOnErr(cmd, err, true)
		}
		return nil
	})
}
