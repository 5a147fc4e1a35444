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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"inetlang.org/go/internal/core/debug"
	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/encoding/yaml"
)

func newSubstCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subst --def name --var x --with term [--rule n] file",
		Short: "substitute a term for a variable in rule bodies",
		Long: `Subst replaces the free occurrences of a variable in the bodies of the
rules of one definition and prints the resulting rules.

The replacement is given in the YAML term syntax, for instance

	inet subst --def main --var x --with '{app: [{ref: f}, 1]}' book.yaml

Lambda, let and dup binders of the variable shadow it. Channels do not:
their names live in a separate, scopeless namespace, and links are never
replaced.

Substitution does not rename binders. If a binder in a rule would capture a
free variable of the replacement, subst logs a warning, or fails with
--strict.
`,
		Args: cobra.ExactArgs(1),
		RunE: mkRunE(c, runSubst),
	}

	f := cmd.Flags()
	f.String(string(flagDef), "", "name of the definition whose rules are rewritten")
	f.Int(string(flagRule), -1, "index of the rule to rewrite; all rules if negative")
	f.String(string(flagVar), "", "variable to replace")
	f.String(string(flagWith), "", "replacement term, in YAML")
	cmd.MarkFlagRequired(string(flagDef))
	cmd.MarkFlagRequired(string(flagVar))
	cmd.MarkFlagRequired(string(flagWith))
	addOutFlags(f)
	return cmd
}

func runSubst(cmd *Command, args []string) error {
	b, err := readBook(cmd, args[0])
	exitOnErr(cmd, err, true)

	name := flagDef.String(cmd)
	d := b.Lookup(name)
	if d == nil {
		return fmt.Errorf("%s: no definition named %q", args[0], name)
	}
	rules := d.Rules
	if i := flagRule.Int(cmd); i >= 0 {
		if i >= len(rules) {
			return fmt.Errorf("definition %s has %d rules", name, len(rules))
		}
		rules = rules[i : i+1]
	}

	from := flagVar.String(cmd)
	to, err := yaml.DecodeTerm(b.Names, "--with", []byte(flagWith.String(cmd)))
	if err != nil {
		return err
	}

	return withOutput(cmd, func(w io.Writer) error {
		for _, r := range rules {
			if c := ir.Captures(r.Body, from, to); len(c) > 0 {
				msg := fmt.Sprintf("substituting %s in %s captures %s", from, debug.RuleString(b.Names, r), strings.Join(c, ", "))
				if strict(cmd) {
					return errors.New(msg)
				}
				slog.Warn(msg)
			}
			r.Body = ir.Subst(r.Body, from, to)
			fmt.Fprintln(w, debug.RuleString(b.Names, r))
		}
		return nil
	})
}
