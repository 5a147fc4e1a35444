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

package debug_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"inetlang.org/go/internal/core/debug"
	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/names"
)

func TestTermString(t *testing.T) {
	r := names.New()
	id := r.Insert("add")

	testCases := []struct {
		in  ir.Term
		out string
	}{
		{&ir.Lambda{Name: "x", Body: &ir.Var{Name: "x"}}, "λx x"},
		{&ir.Lambda{Body: &ir.Erase{}}, "λ* *"},
		{&ir.Chan{Name: "k", Body: &ir.Link{Name: "k"}}, "λ$k $k"},
		{&ir.Let{Name: "a", Value: &ir.Num{Value: 1}, Next: &ir.Var{Name: "a"}}, "let a = 1; a"},
		{&ir.Ref{ID: id}, "add"},
		{ir.Call(&ir.Var{Name: "f"}, &ir.Var{Name: "a"}, &ir.Var{Name: "b"}), "((f a) b)"},
		{
			&ir.If{Cond: &ir.Var{Name: "c"}, Then: &ir.Num{Value: 1}, Else: &ir.Num{Value: 0}},
			"if c then 1 else 0",
		},
		{
			&ir.Dup{Fst: "a", Value: &ir.Var{Name: "x"}, Next: &ir.Var{Name: "a"}},
			"dup a * = x; a",
		},
		{&ir.Sup{Fst: &ir.Num{Value: 1}, Snd: &ir.Num{Value: 2}}, "{1 2}"},
		{&ir.Num{Value: 4294967295}, "4294967295"},
		{
			&ir.BinaryExpr{Op: ir.Shl, X: &ir.Var{Name: "x"}, Y: &ir.Num{Value: 2}},
			"(<< x 2)",
		},
		{
			&ir.Lambda{Name: "x", Body: &ir.Chan{Name: "y", Body: ir.Call(
				&ir.Ref{ID: id}, &ir.Var{Name: "x"}, &ir.Link{Name: "y"})}},
			"λx λ$y ((add x) $y)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.out, func(t *testing.T) {
			qt.Assert(t, qt.Equals(debug.TermString(r, tc.in), tc.out))
		})
	}
}

func TestOperators(t *testing.T) {
	var syms []string
	for _, op := range ir.Ops() {
		s := debug.TermString(nil, &ir.BinaryExpr{Op: op, X: &ir.Num{Value: 1}, Y: &ir.Num{Value: 2}})
		syms = append(syms, strings.TrimSuffix(strings.TrimPrefix(s, "("), " 1 2)"))
	}
	qt.Assert(t, qt.DeepEquals(syms, strings.Fields("+ - * / % == != < > & | ^ ~ << >>")))
}

func TestPatternString(t *testing.T) {
	p := &ir.CtrPattern{Name: "Cons", Args: []ir.Pattern{
		&ir.VarPattern{Name: "h"},
		&ir.CtrPattern{Name: "Pair", Args: []ir.Pattern{&ir.NumPattern{Value: 0}, &ir.VarPattern{}}},
	}}
	qt.Assert(t, qt.Equals(debug.PatternString(p), "(Cons h (Pair 0 *))"))
	qt.Assert(t, qt.Equals(debug.PatternString(&ir.CtrPattern{Name: "Nil"}), "(Nil)"))
}

func TestBookString(t *testing.T) {
	b := ir.NewBook()
	b.Define("main", &ir.Rule{Body: &ir.Num{Value: 42}})
	qt.Assert(t, qt.Equals(debug.BookString(b), "(main) = 42"))
}

func TestBookStringMultiple(t *testing.T) {
	b := ir.NewBook()
	length := b.Names.Insert("len")
	b.Define("main", &ir.Rule{Body: ir.Call(&ir.Ref{ID: length}, &ir.Var{Name: "Nil"})})
	b.Defs = append(b.Defs, &ir.Definition{ID: length, Rules: []*ir.Rule{{
		ID:       length,
		Patterns: []ir.Pattern{&ir.CtrPattern{Name: "Nil"}},
		Body:     &ir.Num{Value: 0},
	}, {
		ID: length,
		Patterns: []ir.Pattern{&ir.CtrPattern{Name: "Cons", Args: []ir.Pattern{
			&ir.VarPattern{}, &ir.VarPattern{Name: "t"},
		}}},
		Body: &ir.BinaryExpr{Op: ir.Add, X: &ir.Num{Value: 1}, Y: ir.Call(&ir.Ref{ID: length}, &ir.Var{Name: "t"})},
	}}})

	want := `(main) = (len Nil)

(len (Nil)) = 0
(len (Cons * t)) = (+ 1 (len t))`
	qt.Assert(t, qt.Equals(debug.BookString(b), want))

	cfg := &debug.Config{SortDefs: true}
	wantSorted := `(len (Nil)) = 0
(len (Cons * t)) = (+ 1 (len t))

(main) = (len Nil)`
	qt.Assert(t, qt.Equals(cfg.BookString(b), wantSorted))

	var sb strings.Builder
	qt.Assert(t, qt.IsNil(cfg.WriteBook(&sb, b)))
	qt.Assert(t, qt.Equals(sb.String(), wantSorted+"\n"))
}

func TestEmptyBook(t *testing.T) {
	var sb strings.Builder
	err := (&debug.Config{}).WriteBook(&sb, ir.NewBook())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sb.String(), ""))
}

func TestDanglingReference(t *testing.T) {
	r := names.New()
	r.Insert("main")
	qt.Assert(t, qt.PanicMatches(func() {
		debug.TermString(r, &ir.App{Fun: &ir.Ref{ID: 3}, Arg: &ir.Num{}})
	}, `debug: reference to unregistered definition 3`))
	qt.Assert(t, qt.PanicMatches(func() {
		debug.TermString(nil, &ir.Ref{ID: 0})
	}, `debug: reference to unregistered definition 0`))
	qt.Assert(t, qt.PanicMatches(func() {
		debug.RuleString(r, &ir.Rule{ID: 1, Body: &ir.Erase{}})
	}, `debug: reference to unregistered definition 1`))
}

func TestRenderDoesNotMutate(t *testing.T) {
	r := names.New()
	r.Insert("main")
	term := &ir.Dup{Fst: "a", Snd: "b", Value: &ir.Ref{ID: 0}, Next: &ir.Sup{Fst: &ir.Var{Name: "a"}, Snd: &ir.Var{Name: "b"}}}
	before := ir.Clone(term)
	s1 := debug.TermString(r, term)
	s2 := debug.TermString(r, term)
	qt.Assert(t, qt.Equals(s1, s2))
	qt.Assert(t, qt.Equals(s1, "dup a b = main; {a b}"))
	qt.Assert(t, qt.DeepEquals[ir.Term](term, before))
	qt.Assert(t, qt.Equals(r.Len(), 1))
}
