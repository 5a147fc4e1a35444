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

// Clone returns a deep copy of t. Clone(nil) is nil.
func Clone(t Term) Term {
	switch x := t.(type) {
	case nil:
		return nil
	case *Lambda:
		return &Lambda{Name: x.Name, Body: Clone(x.Body)}
	case *Var:
		return &Var{Name: x.Name}
	case *Chan:
		return &Chan{Name: x.Name, Body: Clone(x.Body)}
	case *Link:
		return &Link{Name: x.Name}
	case *Let:
		return &Let{Name: x.Name, Value: Clone(x.Value), Next: Clone(x.Next)}
	case *Ref:
		return &Ref{ID: x.ID}
	case *App:
		return &App{Fun: Clone(x.Fun), Arg: Clone(x.Arg)}
	case *If:
		return &If{Cond: Clone(x.Cond), Then: Clone(x.Then), Else: Clone(x.Else)}
	case *Dup:
		return &Dup{Fst: x.Fst, Snd: x.Snd, Value: Clone(x.Value), Next: Clone(x.Next)}
	case *Sup:
		return &Sup{Fst: Clone(x.Fst), Snd: Clone(x.Snd)}
	case *Erase:
		return &Erase{}
	case *Num:
		return &Num{Value: x.Value}
	case *BinaryExpr:
		return &BinaryExpr{Op: x.Op, X: Clone(x.X), Y: Clone(x.Y)}
	default:
		panic(fmt.Sprintf("ir: unknown term %T", t))
	}
}
