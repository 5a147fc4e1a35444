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

package yaml

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/names"
)

// Encode converts a book to YAML. Decoding the result yields a book equal
// to b, except that definitions which are not registered, and registered
// names without a definition, are not represented.
//
// Encode panics if b refers to an unregistered definition.
func Encode(b *ir.Book) ([]byte, error) {
	return yaml.Marshal(BookNode(b))
}

// BookNode returns the YAML mapping representing b.
func BookNode(b *ir.Book) *yaml.Node {
	e := encoder{names: b.Names}
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range b.Defs {
		rules := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range d.Rules {
			rules.Content = append(rules.Content, e.rule(r))
		}
		m.Content = append(m.Content, str(e.defName(d.ID)), rules)
	}
	return m
}

// EncodeTerm returns the YAML node representing t. Names of references are
// looked up in r.
func EncodeTerm(r *names.Registry, t ir.Term) *yaml.Node {
	e := encoder{names: r}
	return e.term(t)
}

type encoder struct {
	names *names.Registry
}

func (e *encoder) defName(id names.ID) string {
	if e.names != nil {
		if name, ok := e.names.Name(id); ok {
			return name
		}
	}
	panic(fmt.Sprintf("yaml: reference to unregistered definition %d", id))
}

func (e *encoder) rule(r *ir.Rule) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	if len(r.Patterns) > 0 {
		pats := flowSeq()
		for _, p := range r.Patterns {
			pats.Content = append(pats.Content, e.pattern(p))
		}
		m.Content = append(m.Content, str("pats"), pats)
	}
	m.Content = append(m.Content, str("body"), e.term(r.Body))
	return m
}

func (e *encoder) pattern(p ir.Pattern) *yaml.Node {
	switch x := p.(type) {
	case *ir.CtrPattern:
		m := flowMap("ctr", str(x.Name))
		if len(x.Args) > 0 {
			args := flowSeq()
			for _, a := range x.Args {
				args.Content = append(args.Content, e.pattern(a))
			}
			m.Content = append(m.Content, str("args"), args)
		}
		return m
	case *ir.VarPattern:
		return binder(x.Name)
	case *ir.NumPattern:
		return num(x.Value)
	default:
		panic(fmt.Sprintf("yaml: unknown pattern %T", p))
	}
}

func (e *encoder) term(t ir.Term) *yaml.Node {
	switch x := t.(type) {
	case *ir.Lambda:
		return flowMap("lam", binder(x.Name), "body", e.term(x.Body))
	case *ir.Var:
		return flowMap("var", str(x.Name))
	case *ir.Chan:
		return flowMap("chn", str(x.Name), "body", e.term(x.Body))
	case *ir.Link:
		return flowMap("lnk", str(x.Name))
	case *ir.Let:
		return flowMap("let", str(x.Name), "value", e.term(x.Value), "next", e.term(x.Next))
	case *ir.Ref:
		return flowMap("ref", str(e.defName(x.ID)))
	case *ir.App:
		fun, args := ir.Spine(x)
		seq := flowSeq(e.term(fun))
		for _, a := range args {
			seq.Content = append(seq.Content, e.term(a))
		}
		return flowMap("app", seq)
	case *ir.If:
		return flowMap("if", e.term(x.Cond), "then", e.term(x.Then), "else", e.term(x.Else))
	case *ir.Dup:
		return flowMap("dup", flowSeq(binder(x.Fst), binder(x.Snd)), "value", e.term(x.Value), "next", e.term(x.Next))
	case *ir.Sup:
		return flowMap("sup", flowSeq(e.term(x.Fst), e.term(x.Snd)))
	case *ir.Erase:
		return str(wildcard)
	case *ir.Num:
		return num(x.Value)
	case *ir.BinaryExpr:
		return flowMap("op", str(x.Op.String()), "x", e.term(x.X), "y", e.term(x.Y))
	default:
		panic(fmt.Sprintf("yaml: unknown term %T", t))
	}
}

// flowMap builds a flow-style mapping from alternating keys and values.
func flowMap(kv ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for i := 0; i < len(kv); i += 2 {
		m.Content = append(m.Content, str(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return m
}

func flowSeq(elems ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: elems}
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func binder(name string) *yaml.Node {
	if name == "" {
		return str(wildcard)
	}
	return str(name)
}

func num(v uint32) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(v), 10)}
}
