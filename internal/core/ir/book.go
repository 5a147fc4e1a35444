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

package ir

import "inetlang.org/go/internal/core/names"

// A Book is the collection of definitions of a program, together with the
// registry naming them.
type Book struct {
	Names *names.Registry

	// Defs holds the definitions in insertion order. The order only
	// affects output.
	Defs []*Definition
}

// NewBook returns an empty book with a fresh registry.
func NewBook() *Book {
	return &Book{Names: names.New()}
}

// Define registers name, sets the ID of each of the given rules and appends
// the resulting definition to b.
//
// Like names.Registry.Insert, Define panics if name is already registered.
func (b *Book) Define(name string, rules ...*Rule) *Definition {
	id := b.Names.Insert(name)
	for _, r := range rules {
		r.ID = id
	}
	d := &Definition{ID: id, Rules: rules}
	b.Defs = append(b.Defs, d)
	return d
}

// Lookup returns the definition registered under name, or nil if there is
// none.
func (b *Book) Lookup(name string) *Definition {
	id, ok := b.Names.ID(name)
	if !ok {
		return nil
	}
	for _, d := range b.Defs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// A Definition is a top-level function given by one or more rules.
//
// All rules of a definition must have the same arity. This is a
// precondition of the code constructing definitions and is not checked
// here; see package validate.
type Definition struct {
	ID    names.ID
	Rules []*Rule
}

// Arity returns the number of arguments of d, as given by its first rule.
func (d *Definition) Arity() int {
	return d.Rules[0].Arity()
}

// A Rule is a single pattern-matching equation of a definition.
type Rule struct {
	ID       names.ID
	Patterns []Pattern
	Body     Term
}

// Arity returns the number of patterns of r.
func (r *Rule) Arity() int {
	return len(r.Patterns)
}

// PatternTerms elaborates each pattern of r into a term.
func (r *Rule) PatternTerms() []Term {
	terms := make([]Term, len(r.Patterns))
	for i, p := range r.Patterns {
		terms[i] = PatternTerm(p)
	}
	return terms
}
