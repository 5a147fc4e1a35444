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

// Package yaml converts books of definitions between the IR and YAML.
//
// A book is a mapping from definition names to sequences of rules:
//
//	len:
//	- pats: [{ctr: Nil}]
//	  body: 0
//	- pats: [{ctr: Cons, args: ["*", t]}]
//	  body: {op: +, x: 1, y: {app: [{ref: len}, {var: t}]}}
//
// Terms are integers, the erased value "*", or single-purpose mappings:
// {var: x}, {lnk: x}, {ref: name}, {lam: x, body: T}, {chn: x, body: T},
// {let: x, value: T, next: T}, {app: [F, A...]}, {if: C, then: T, else: T},
// {dup: [a, b], value: T, next: T}, {sup: [A, B]} and {op: +, x: T, y: T}.
// Binders may be "*" or null to denote a wildcard.
//
// Patterns are integers, variable names ("*" for a wildcard) or
// {ctr: Name, args: [...]}.
package yaml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/names"
)

const wildcard = "*"

// Decode parses a YAML book. Definition names are registered in document
// order before any rule is decoded, so references may point forward.
//
// Names are normalized to Unicode NFC.
func Decode(filename string, data []byte) (*ir.Book, error) {
	d := &decoder{filename: filename, book: ir.NewBook()}
	doc, err := d.parse(data)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return d.book, nil
	}
	if err := d.definitions(doc); err != nil {
		return nil, err
	}
	return d.book, nil
}

// DecodeTerm parses a single YAML term. References are resolved in r,
// which may be nil if the term has none.
func DecodeTerm(r *names.Registry, filename string, data []byte) (ir.Term, error) {
	if r == nil {
		r = names.New()
	}
	d := &decoder{filename: filename, book: &ir.Book{Names: r}}
	doc, err := d.parse(data)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: empty term", filename)
	}
	return d.term(doc)
}

type decoder struct {
	filename string
	book     *ir.Book

	// following ensures we don't loop forever when expanding YAML anchors.
	following map[*yaml.Node]bool
}

// parse returns the content of the single document in data, or nil if
// data holds no document.
func (d *decoder) parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// yaml.v3 syntax errors are opaque strings; rewrite the
		// common prefix to our position format.
		e := err.Error()
		if s, ok := strings.CutPrefix(e, "yaml: line "); ok {
			return nil, errors.New(d.filename + ":" + s)
		}
		if s, ok := strings.CutPrefix(e, "yaml:"); ok {
			return nil, errors.New(d.filename + ":" + s)
		}
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

func (d *decoder) posErrorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf(d.filename+":"+strconv.Itoa(n.Line)+": "+format, args...)
}

// resolve follows aliases.
func (d *decoder) resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// expand resolves an alias to a term or pattern, calling f with its value.
// It fails if the value contains the alias itself.
func expand[T any](d *decoder, n *yaml.Node, f func(*yaml.Node) (T, error)) (T, error) {
	if d.following == nil {
		d.following = map[*yaml.Node]bool{}
	}
	if d.following[n] {
		var zero T
		return zero, d.posErrorf(n, "anchor %q value contains itself", n.Value)
	}
	d.following[n] = true
	defer delete(d.following, n)
	return f(n.Alias)
}

func (d *decoder) definitions(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return d.posErrorf(n, "book must be a mapping from definition names to rules")
	}
	ids := make([]names.ID, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i]
		name, err := d.name(key)
		if err != nil {
			return err
		}
		if d.book.Names.ContainsName(name) {
			return d.posErrorf(key, "definition %q redeclared", name)
		}
		ids = append(ids, d.book.Names.Insert(name))
	}
	for i, id := range ids {
		def, err := d.definition(id, n.Content[2*i+1])
		if err != nil {
			return err
		}
		d.book.Defs = append(d.book.Defs, def)
	}
	return nil
}

func (d *decoder) definition(id names.ID, n *yaml.Node) (*ir.Definition, error) {
	n = d.resolve(n)
	if n.Kind != yaml.SequenceNode || len(n.Content) == 0 {
		return nil, d.posErrorf(n, "definition must be a non-empty sequence of rules")
	}
	def := &ir.Definition{ID: id}
	for _, rn := range n.Content {
		r, err := d.rule(id, rn)
		if err != nil {
			return nil, err
		}
		def.Rules = append(def.Rules, r)
	}
	return def, nil
}

func (d *decoder) rule(id names.ID, n *yaml.Node) (*ir.Rule, error) {
	f, err := d.fields(n, "body", "pats")
	if err != nil {
		return nil, err
	}
	body, ok := f["body"]
	if !ok {
		return nil, d.posErrorf(n, "rule has no body")
	}
	r := &ir.Rule{ID: id}
	if pats, ok := f["pats"]; ok {
		list, err := d.sequence(pats, -1)
		if err != nil {
			return nil, err
		}
		for _, pn := range list {
			p, err := d.pattern(pn)
			if err != nil {
				return nil, err
			}
			r.Patterns = append(r.Patterns, p)
		}
	}
	if r.Body, err = d.term(body); err != nil {
		return nil, err
	}
	return r, nil
}

// fields returns the entries of mapping n, failing for keys not in allowed.
func (d *decoder) fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	n = d.resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, d.posErrorf(n, "expected a mapping")
	}
	f := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if !contains(allowed, k.Value) {
			return nil, d.posErrorf(k, "unexpected key %q; allowed keys are %s", k.Value, strings.Join(allowed, ", "))
		}
		if _, dup := f[k.Value]; dup {
			return nil, d.posErrorf(k, "duplicate key %q", k.Value)
		}
		f[k.Value] = v
	}
	return f, nil
}

// sequence returns the elements of sequence n, which must have length
// elements unless length is negative.
func (d *decoder) sequence(n *yaml.Node, length int) ([]*yaml.Node, error) {
	n = d.resolve(n)
	if n.Kind != yaml.SequenceNode {
		return nil, d.posErrorf(n, "expected a sequence")
	}
	if length >= 0 && len(n.Content) != length {
		return nil, d.posErrorf(n, "expected %d elements, found %d", length, len(n.Content))
	}
	return n.Content, nil
}

// name decodes an identifier.
func (d *decoder) name(n *yaml.Node) (string, error) {
	n = d.resolve(n)
	if n.Kind != yaml.ScalarNode || n.Value == "" || n.ShortTag() == "!!null" {
		return "", d.posErrorf(n, "expected a name")
	}
	return norm.NFC.String(n.Value), nil
}

// binder decodes an optional name; "*" and null denote a wildcard.
func (d *decoder) binder(n *yaml.Node) (string, error) {
	r := d.resolve(n)
	if r.Kind == yaml.ScalarNode && (r.ShortTag() == "!!null" || r.Value == wildcard) {
		return "", nil
	}
	return d.name(r)
}

func (d *decoder) num(n *yaml.Node) (uint32, error) {
	v, err := strconv.ParseUint(n.Value, 0, 32)
	if err != nil {
		return 0, d.posErrorf(n, "invalid number %q: must be an unsigned 32-bit integer", n.Value)
	}
	return uint32(v), nil
}

func (d *decoder) pattern(n *yaml.Node) (ir.Pattern, error) {
	if n.Kind == yaml.AliasNode {
		return expand(d, n, d.pattern)
	}
	switch {
	case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!int":
		v, err := d.num(n)
		if err != nil {
			return nil, err
		}
		return &ir.NumPattern{Value: v}, nil

	case n.Kind == yaml.ScalarNode:
		name, err := d.binder(n)
		if err != nil {
			return nil, err
		}
		return &ir.VarPattern{Name: name}, nil
	}

	f, err := d.fields(n, "ctr", "args")
	if err != nil {
		return nil, err
	}
	ctr, ok := f["ctr"]
	if !ok {
		return nil, d.posErrorf(n, "pattern mapping must have a ctr key")
	}
	p := &ir.CtrPattern{}
	if p.Name, err = d.name(ctr); err != nil {
		return nil, err
	}
	if args, ok := f["args"]; ok {
		list, err := d.sequence(args, -1)
		if err != nil {
			return nil, err
		}
		for _, an := range list {
			a, err := d.pattern(an)
			if err != nil {
				return nil, err
			}
			p.Args = append(p.Args, a)
		}
	}
	return p, nil
}

// termKeys maps the key identifying each kind of term mapping to the other
// keys it requires.
var termKeys = map[string][]string{
	"var": nil,
	"lnk": nil,
	"ref": nil,
	"app": nil,
	"sup": nil,
	"lam": {"body"},
	"chn": {"body"},
	"let": {"value", "next"},
	"dup": {"value", "next"},
	"if":  {"then", "else"},
	"op":  {"x", "y"},
}

func (d *decoder) term(n *yaml.Node) (ir.Term, error) {
	if n.Kind == yaml.AliasNode {
		return expand(d, n, d.term)
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch {
		case n.ShortTag() == "!!int":
			v, err := d.num(n)
			if err != nil {
				return nil, err
			}
			return &ir.Num{Value: v}, nil
		case n.Value == wildcard:
			return &ir.Erase{}, nil
		}
		return nil, d.posErrorf(n, "unexpected scalar %q: variables are written {var: %s}", n.Value, n.Value)

	case yaml.MappingNode:
	default:
		return nil, d.posErrorf(n, "expected a term")
	}

	kind, f, err := d.termFields(n)
	if err != nil {
		return nil, err
	}
	t, err := d.mapping(kind, f)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// mapping decodes a term mapping of the given kind with fields f.
func (d *decoder) mapping(kind string, f map[string]*yaml.Node) (t ir.Term, err error) {
	switch kind {
	case "var":
		name, err := d.name(f["var"])
		return &ir.Var{Name: name}, err

	case "lnk":
		name, err := d.name(f["lnk"])
		return &ir.Link{Name: name}, err

	case "ref":
		name, err := d.name(f["ref"])
		if err != nil {
			return nil, err
		}
		id, ok := d.book.Names.ID(name)
		if !ok {
			return nil, d.posErrorf(f["ref"], "reference to undefined definition %q", name)
		}
		return &ir.Ref{ID: id}, nil

	case "lam":
		x := &ir.Lambda{}
		if x.Name, err = d.binder(f["lam"]); err != nil {
			return nil, err
		}
		x.Body, err = d.term(f["body"])
		return x, err

	case "chn":
		x := &ir.Chan{}
		if x.Name, err = d.name(f["chn"]); err != nil {
			return nil, err
		}
		x.Body, err = d.term(f["body"])
		return x, err

	case "let":
		x := &ir.Let{}
		if x.Name, err = d.name(f["let"]); err != nil {
			return nil, err
		}
		if x.Value, err = d.term(f["value"]); err != nil {
			return nil, err
		}
		x.Next, err = d.term(f["next"])
		return x, err

	case "app":
		list, err := d.sequence(f["app"], -1)
		if err != nil {
			return nil, err
		}
		if len(list) < 2 {
			return nil, d.posErrorf(f["app"], "application needs a function and at least one argument")
		}
		terms, err := d.terms(list)
		if err != nil {
			return nil, err
		}
		return ir.Call(terms[0], terms[1:]...), nil

	case "if":
		x := &ir.If{}
		if x.Cond, err = d.term(f["if"]); err != nil {
			return nil, err
		}
		if x.Then, err = d.term(f["then"]); err != nil {
			return nil, err
		}
		x.Else, err = d.term(f["else"])
		return x, err

	case "dup":
		list, err := d.sequence(f["dup"], 2)
		if err != nil {
			return nil, err
		}
		x := &ir.Dup{}
		if x.Fst, err = d.binder(list[0]); err != nil {
			return nil, err
		}
		if x.Snd, err = d.binder(list[1]); err != nil {
			return nil, err
		}
		if x.Value, err = d.term(f["value"]); err != nil {
			return nil, err
		}
		x.Next, err = d.term(f["next"])
		return x, err

	case "sup":
		list, err := d.sequence(f["sup"], 2)
		if err != nil {
			return nil, err
		}
		terms, err := d.terms(list)
		if err != nil {
			return nil, err
		}
		return &ir.Sup{Fst: terms[0], Snd: terms[1]}, nil

	case "op":
		sym := d.resolve(f["op"])
		op, ok := ir.ParseOp(sym.Value)
		if sym.Kind != yaml.ScalarNode || !ok {
			return nil, d.posErrorf(sym, "unknown operator %q", sym.Value)
		}
		x := &ir.BinaryExpr{Op: op}
		if x.X, err = d.term(f["x"]); err != nil {
			return nil, err
		}
		x.Y, err = d.term(f["y"])
		return x, err
	}
	panic("unreachable")
}

// termFields identifies the kind of a term mapping and checks that it has
// exactly the keys required for that kind.
func (d *decoder) termFields(n *yaml.Node) (kind string, f map[string]*yaml.Node, err error) {
	for i := 0; i < len(n.Content); i += 2 {
		k := n.Content[i].Value
		if _, ok := termKeys[k]; !ok {
			continue
		}
		if kind != "" {
			return "", nil, d.posErrorf(n.Content[i], "term has both %q and %q keys", kind, k)
		}
		kind = k
	}
	if kind == "" {
		return "", nil, d.posErrorf(n, "cannot determine kind of term")
	}
	allowed := append([]string{kind}, termKeys[kind]...)
	if f, err = d.fields(n, allowed...); err != nil {
		return "", nil, err
	}
	for _, k := range termKeys[kind] {
		if _, ok := f[k]; !ok {
			return "", nil, d.posErrorf(n, "%s term requires a %q key", kind, k)
		}
	}
	return kind, f, nil
}

func (d *decoder) terms(list []*yaml.Node) ([]ir.Term, error) {
	terms := make([]ir.Term, len(list))
	for i, n := range list {
		t, err := d.term(n)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
