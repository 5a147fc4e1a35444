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

// Package ir defines the intermediate representation of programs evaluated
// by the interaction-net reduction machine.
//
// Terms are trees: every node exclusively owns its children. Values that are
// shared in the resulting net are expressed with names rather than aliased
// nodes, either through the lexical binders (Lambda, Let, Dup) or through the
// scopeless Chan binder, whose name may be used by a Link anywhere in the
// enclosing rule, including outside the Chan body.
//
// An empty binder name denotes a wildcard: the bound value is not used.
package ir

import "inetlang.org/go/internal/core/names"

// A Term is an expression of the IR.
type Term interface {
	term() // enforce internal.
}

// Lambda is a function abstraction. The bound variable is lexically scoped
// to Body.
type Lambda struct {
	Name string // "" for a wildcard
	Body Term
}

// Var references a lexically bound variable.
type Var struct {
	Name string
}

// Chan is a scopeless lambda: the bound name may be referenced by a Link
// outside of Body.
type Chan struct {
	Name string
	Body Term
}

// Link is a use of a Chan-bound name.
type Link struct {
	Name string
}

// Let binds Name to Value within Next.
type Let struct {
	Name  string
	Value Term
	Next  Term
}

// Ref calls a top-level definition.
type Ref struct {
	ID names.ID
}

// App applies Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

// If branches on a numeric condition.
type If struct {
	Cond Term
	Then Term
	Else Term
}

// Dup duplicates Value into two bindings that are usable independently
// within Next.
type Dup struct {
	Fst   string // "" for a wildcard
	Snd   string // "" for a wildcard
	Value Term
	Next  Term
}

// Sup pairs two terms into one superposed value. It is the dual of Dup.
type Sup struct {
	Fst Term
	Snd Term
}

// Erase is an erased value.
type Erase struct{}

// Num is an unsigned 32-bit literal.
type Num struct {
	Value uint32
}

// BinaryExpr is a numeric operation on X and Y. Operations are only tagged
// here; their semantics belong to the runtime.
type BinaryExpr struct {
	Op Op
	X  Term
	Y  Term
}

func (*Lambda) term()     {}
func (*Var) term()        {}
func (*Chan) term()       {}
func (*Link) term()       {}
func (*Let) term()        {}
func (*Ref) term()        {}
func (*App) term()        {}
func (*If) term()         {}
func (*Dup) term()        {}
func (*Sup) term()        {}
func (*Erase) term()      {}
func (*Num) term()        {}
func (*BinaryExpr) term() {}
