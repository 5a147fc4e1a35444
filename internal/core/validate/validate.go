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

// Package validate checks the structural invariants of a book that the
// core IR packages assume but do not verify themselves.
package validate

import (
	"errors"
	"fmt"

	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/names"
)

type Config struct {
	// AllErrors reports every problem found rather than only the first.
	AllErrors bool
}

// An Error describes a single problem in a book.
type Error struct {
	Def  string // name of the definition, or #id if it has none
	Rule int    // index of the rule, or -1 for the definition as a whole
	Msg  string
}

func (e *Error) Error() string {
	if e.Rule < 0 {
		return fmt.Sprintf("%s: %s", e.Def, e.Msg)
	}
	return fmt.Sprintf("%s: rule %d: %s", e.Def, e.Rule, e.Msg)
}

// Book checks that
//
//   - every definition is registered, unique, and has at least one rule,
//   - every rule carries the ID of its definition,
//   - all rules of a definition have the same arity,
//   - every reference names a registered definition,
//   - every link has a channel of the same name in its rule, and no
//     channel name is bound twice in a rule.
//
// The resulting error joins values of type *Error.
func Book(b *ir.Book, cfg *Config) error {
	if cfg == nil {
		cfg = &Config{}
	}
	v := validator{Config: *cfg, names: b.Names, seen: map[names.ID]bool{}}
	for _, d := range b.Defs {
		v.definition(d)
		if len(v.errs) > 0 && !v.AllErrors {
			break
		}
	}
	return errors.Join(v.errs...)
}

type validator struct {
	Config
	names *names.Registry
	seen  map[names.ID]bool
	errs  []error
}

func (v *validator) addf(def string, rule int, format string, args ...any) {
	if len(v.errs) > 0 && !v.AllErrors {
		return
	}
	v.errs = append(v.errs, &Error{Def: def, Rule: rule, Msg: fmt.Sprintf(format, args...)})
}

func (v *validator) name(id names.ID) string {
	if name, ok := v.names.Name(id); ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

func (v *validator) definition(d *ir.Definition) {
	def := v.name(d.ID)
	if !v.names.ContainsID(d.ID) {
		v.addf(def, -1, "definition id is not registered")
	}
	if v.seen[d.ID] {
		v.addf(def, -1, "defined more than once")
	}
	v.seen[d.ID] = true

	if len(d.Rules) == 0 {
		v.addf(def, -1, "definition has no rules")
		return
	}
	arity := d.Arity()
	for i, r := range d.Rules {
		if r.ID != d.ID {
			v.addf(def, i, "rule belongs to %s", v.name(r.ID))
		}
		if r.Arity() != arity {
			v.addf(def, i, "rule has %d patterns, want %d", r.Arity(), arity)
		}
		v.body(def, i, r.Body)
	}
}

func (v *validator) body(def string, rule int, t ir.Term) {
	chans := map[string]int{}
	var links []string
	ir.Walk(t, func(t ir.Term) bool {
		switch x := t.(type) {
		case *ir.Ref:
			if !v.names.ContainsID(x.ID) {
				v.addf(def, rule, "reference to unregistered definition %d", x.ID)
			}
		case *ir.Chan:
			chans[x.Name]++
			if chans[x.Name] == 2 {
				v.addf(def, rule, "channel $%s bound more than once", x.Name)
			}
		case *ir.Link:
			links = append(links, x.Name)
		}
		return true
	})
	for _, l := range links {
		if chans[l] == 0 {
			v.addf(def, rule, "link $%s has no channel", l)
			chans[l] = -1 // report once
		}
	}
}
