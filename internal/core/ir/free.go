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

import (
	"fmt"

	"github.com/mpvl/unique"
)

// FreeVars returns the sorted names of the variables occurring free in t.
//
// Channel names live in their own namespace: a Chan does not bind variables
// and Links are not reported.
func FreeVars(t Term) []string {
	s := scope{bound: map[string]int{}}
	var free []string
	s.visit(t, "", func(v *Var) {
		if s.bound[v.Name] == 0 {
			free = append(free, v.Name)
		}
	})
	unique.Sort(unique.StringSlice{P: &free})
	return free
}

// Captures returns the sorted free variables of to that would be captured
// by a lexical binder if to were substituted for from in t. An empty result
// means Subst(t, from, to) is capture-free.
func Captures(t Term, from string, to Term) []string {
	toFree := FreeVars(to)
	if len(toFree) == 0 {
		return nil
	}
	s := scope{bound: map[string]int{}}
	var captured []string
	s.visit(t, from, func(v *Var) {
		if v.Name != from {
			return
		}
		for _, name := range toFree {
			if s.bound[name] > 0 {
				captured = append(captured, name)
			}
		}
	})
	unique.Sort(unique.StringSlice{P: &captured})
	return captured
}

// scope tracks the lexical binders enclosing the current position of a
// traversal.
type scope struct {
	bound map[string]int
}

func (s *scope) push(names ...string) {
	for _, n := range names {
		if n != "" {
			s.bound[n]++
		}
	}
}

func (s *scope) pop(names ...string) {
	for _, n := range names {
		if n != "" {
			s.bound[n]--
		}
	}
}

// visit calls f for each variable of t with s reflecting its enclosing
// binders. If stop is not empty, subterms in which a binder shadows stop are
// skipped, following the same rules as Subst.
func (s *scope) visit(t Term, stop string, f func(*Var)) {
	switch x := t.(type) {
	case *Lambda:
		if stop != "" && binds(x.Name, stop) {
			return
		}
		s.push(x.Name)
		s.visit(x.Body, stop, f)
		s.pop(x.Name)

	case *Var:
		f(x)

	case *Chan:
		s.visit(x.Body, stop, f)

	case *Let:
		s.visit(x.Value, stop, f)
		if stop != "" && x.Name == stop {
			return
		}
		s.push(x.Name)
		s.visit(x.Next, stop, f)
		s.pop(x.Name)

	case *Dup:
		s.visit(x.Value, stop, f)
		if stop != "" && (binds(x.Fst, stop) || binds(x.Snd, stop)) {
			return
		}
		s.push(x.Fst, x.Snd)
		s.visit(x.Next, stop, f)
		s.pop(x.Fst, x.Snd)

	case *App:
		s.visit(x.Fun, stop, f)
		s.visit(x.Arg, stop, f)

	case *If:
		s.visit(x.Cond, stop, f)
		s.visit(x.Then, stop, f)
		s.visit(x.Else, stop, f)

	case *Sup:
		s.visit(x.Fst, stop, f)
		s.visit(x.Snd, stop, f)

	case *BinaryExpr:
		s.visit(x.X, stop, f)
		s.visit(x.Y, stop, f)

	case *Link, *Ref, *Erase, *Num:

	default:
		panic(fmt.Sprintf("ir: unknown term %T", t))
	}
}
