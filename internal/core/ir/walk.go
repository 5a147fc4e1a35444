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

import "fmt"

// Walk traverses t in depth-first order, calling visit for each term before
// its children. If visit returns false, the children of that term are not
// visited.
func Walk(t Term, visit func(Term) bool) {
	if t == nil || !visit(t) {
		return
	}
	switch x := t.(type) {
	case *Lambda:
		Walk(x.Body, visit)
	case *Chan:
		Walk(x.Body, visit)
	case *Let:
		Walk(x.Value, visit)
		Walk(x.Next, visit)
	case *App:
		Walk(x.Fun, visit)
		Walk(x.Arg, visit)
	case *If:
		Walk(x.Cond, visit)
		Walk(x.Then, visit)
		Walk(x.Else, visit)
	case *Dup:
		Walk(x.Value, visit)
		Walk(x.Next, visit)
	case *Sup:
		Walk(x.Fst, visit)
		Walk(x.Snd, visit)
	case *BinaryExpr:
		Walk(x.X, visit)
		Walk(x.Y, visit)
	case *Var, *Link, *Ref, *Erase, *Num:
	default:
		panic(fmt.Sprintf("ir: unknown term %T", t))
	}
}
