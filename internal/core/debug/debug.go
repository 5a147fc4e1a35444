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

// Package debug renders IR terms, rules, definitions and books as text.
//
// The output is deterministic and uses the concrete syntax of the language,
// so that a compatible parser reads back the same tree, up to the names of
// wildcards.
package debug

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/names"
)

// Config configures the rendering of books.
type Config struct {
	// SortDefs renders definitions sorted by name instead of in the order
	// in which they appear in the book.
	SortDefs bool
}

// TermString returns the textual form of t. Names of references are looked
// up in r, which may be nil if t contains no references.
//
// TermString panics if t refers to a definition that is not in r.
func TermString(r *names.Registry, t ir.Term) string {
	p := printer{names: r}
	p.term(t)
	return p.String()
}

// PatternString returns the textual form of a rule pattern.
func PatternString(pat ir.Pattern) string {
	var p printer
	p.pattern(pat)
	return p.String()
}

// RuleString returns the textual form of a rule: (name pats...) = body.
func RuleString(r *names.Registry, rule *ir.Rule) string {
	p := printer{names: r}
	p.rule(rule)
	return p.String()
}

// DefinitionString returns the rules of d, one per line.
func DefinitionString(r *names.Registry, d *ir.Definition) string {
	p := printer{names: r}
	p.definition(d)
	return p.String()
}

// BookString returns the definitions of b in stored order, separated by
// blank lines.
func BookString(b *ir.Book) string {
	return (*Config)(nil).BookString(b)
}

// BookString is like the package function, but honors the configuration.
func (c *Config) BookString(b *ir.Book) string {
	p := printer{names: b.Names}
	for i, d := range c.defs(b) {
		if i > 0 {
			p.WriteString("\n\n")
		}
		p.definition(d)
	}
	return p.String()
}

// WriteBook writes the textual form of b to w, followed by a newline if b
// is not empty.
func (c *Config) WriteBook(w io.Writer, b *ir.Book) error {
	s := c.BookString(b)
	if s != "" {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}

func (c *Config) defs(b *ir.Book) []*ir.Definition {
	if c == nil || !c.SortDefs {
		return b.Defs
	}
	defs := append([]*ir.Definition(nil), b.Defs...)
	sort.SliceStable(defs, func(i, j int) bool {
		return defName(b.Names, defs[i].ID) < defName(b.Names, defs[j].ID)
	})
	return defs
}

type printer struct {
	strings.Builder
	names *names.Registry
}

// defName returns the name registered for id and panics if there is none:
// a dangling reference means an earlier pass broke the book.
func defName(r *names.Registry, id names.ID) string {
	if r != nil {
		if name, ok := r.Name(id); ok {
			return name
		}
	}
	panic(fmt.Sprintf("debug: reference to unregistered definition %d", id))
}

func (p *printer) binder(name string) {
	if name == "" {
		p.WriteByte('*')
		return
	}
	p.WriteString(name)
}

func (p *printer) term(t ir.Term) {
	switch x := t.(type) {
	case *ir.Lambda:
		p.WriteString("λ")
		p.binder(x.Name)
		p.WriteByte(' ')
		p.term(x.Body)

	case *ir.Var:
		p.WriteString(x.Name)

	case *ir.Chan:
		p.WriteString("λ$")
		p.WriteString(x.Name)
		p.WriteByte(' ')
		p.term(x.Body)

	case *ir.Link:
		p.WriteByte('$')
		p.WriteString(x.Name)

	case *ir.Let:
		fmt.Fprintf(p, "let %s = ", x.Name)
		p.term(x.Value)
		p.WriteString("; ")
		p.term(x.Next)

	case *ir.Ref:
		p.WriteString(defName(p.names, x.ID))

	case *ir.App:
		p.WriteByte('(')
		p.term(x.Fun)
		p.WriteByte(' ')
		p.term(x.Arg)
		p.WriteByte(')')

	case *ir.If:
		p.WriteString("if ")
		p.term(x.Cond)
		p.WriteString(" then ")
		p.term(x.Then)
		p.WriteString(" else ")
		p.term(x.Else)

	case *ir.Dup:
		p.WriteString("dup ")
		p.binder(x.Fst)
		p.WriteByte(' ')
		p.binder(x.Snd)
		p.WriteString(" = ")
		p.term(x.Value)
		p.WriteString("; ")
		p.term(x.Next)

	case *ir.Sup:
		p.WriteByte('{')
		p.term(x.Fst)
		p.WriteByte(' ')
		p.term(x.Snd)
		p.WriteByte('}')

	case *ir.Erase:
		p.WriteByte('*')

	case *ir.Num:
		p.WriteString(strconv.FormatUint(uint64(x.Value), 10))

	case *ir.BinaryExpr:
		p.WriteByte('(')
		p.WriteString(x.Op.String())
		p.WriteByte(' ')
		p.term(x.X)
		p.WriteByte(' ')
		p.term(x.Y)
		p.WriteByte(')')

	default:
		panic(fmt.Sprintf("debug: unknown term %T", t))
	}
}

func (p *printer) pattern(pat ir.Pattern) {
	switch x := pat.(type) {
	case *ir.CtrPattern:
		p.WriteByte('(')
		p.WriteString(x.Name)
		for _, a := range x.Args {
			p.WriteByte(' ')
			p.pattern(a)
		}
		p.WriteByte(')')

	case *ir.VarPattern:
		p.binder(x.Name)

	case *ir.NumPattern:
		p.WriteString(strconv.FormatUint(uint64(x.Value), 10))

	default:
		panic(fmt.Sprintf("debug: unknown pattern %T", pat))
	}
}

func (p *printer) rule(r *ir.Rule) {
	p.WriteByte('(')
	p.WriteString(defName(p.names, r.ID))
	for _, pat := range r.Patterns {
		p.WriteByte(' ')
		p.pattern(pat)
	}
	p.WriteString(") = ")
	p.term(r.Body)
}

func (p *printer) definition(d *ir.Definition) {
	for i, r := range d.Rules {
		if i > 0 {
			p.WriteByte('\n')
		}
		p.rule(r)
	}
}
