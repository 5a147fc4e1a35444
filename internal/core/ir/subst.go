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
	"log/slog"
	"strings"

	"inetlang.org/go/internal/inetdebug"
)

// Subst replaces every free occurrence of the variable from in t with a
// copy of to. Children of t are rewritten in place. The result is the new
// root, which differs from t only when t itself is the variable from.
//
// Only the lexical binders Lambda, Let and Dup shadow from. A Chan binder is
// scopeless and never shadows it, and a Link is never replaced: links are
// resolved through channel names, not through lexical substitution.
//
// Subst does not rename binders to avoid capture. Callers must ensure that
// no free variable of to is bound by a binder enclosing an occurrence of
// from in t, for instance by alpha-renaming first; Captures reports such
// conflicts. With INET_DEBUG=strict, Subst panics on them.
func Subst(t Term, from string, to Term) Term {
	if inetdebug.Flags.Strict {
		if c := Captures(t, from, to); len(c) > 0 {
			panic(fmt.Sprintf("ir: substituting %s would capture %s",
				from, strings.Join(c, ", ")))
		}
	}
	s := substituter{from: from, to: to, log: inetdebug.Flags.LogSubst > 0}
	return s.subst(t)
}

type substituter struct {
	from string
	to   Term
	log  bool
	n    int // number of replaced occurrences
}

func (s *substituter) subst(t Term) Term {
	switch x := t.(type) {
	case *Lambda:
		if binds(x.Name, s.from) {
			break
		}
		x.Body = s.subst(x.Body)

	case *Var:
		if x.Name == s.from {
			s.n++
			if s.log {
				slog.Debug("subst", "var", s.from, "occurrence", s.n, "with", fmt.Sprintf("%T", s.to))
			}
			return Clone(s.to)
		}

	case *Chan:
		x.Body = s.subst(x.Body)

	case *Let:
		x.Value = s.subst(x.Value)
		if x.Name != s.from {
			x.Next = s.subst(x.Next)
		}

	case *Dup:
		x.Value = s.subst(x.Value)
		if !binds(x.Fst, s.from) && !binds(x.Snd, s.from) {
			x.Next = s.subst(x.Next)
		}

	case *App:
		x.Fun = s.subst(x.Fun)
		x.Arg = s.subst(x.Arg)

	case *If:
		x.Cond = s.subst(x.Cond)
		x.Then = s.subst(x.Then)
		x.Else = s.subst(x.Else)

	case *Sup:
		x.Fst = s.subst(x.Fst)
		x.Snd = s.subst(x.Snd)

	case *BinaryExpr:
		x.X = s.subst(x.X)
		x.Y = s.subst(x.Y)

	case *Link, *Ref, *Erase, *Num:

	default:
		panic(fmt.Sprintf("ir: unknown term %T", t))
	}
	return t
}

// binds reports whether a binder with the given optional name binds v.
func binds(name, v string) bool {
	return name != "" && name == v
}
