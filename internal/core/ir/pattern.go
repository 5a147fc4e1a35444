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

// A Pattern is matched against one argument of a Rule.
type Pattern interface {
	pattern() // enforce internal.
}

// CtrPattern matches a constructor application and its fields.
type CtrPattern struct {
	Name string
	Args []Pattern
}

// VarPattern matches anything and binds it to Name. An empty name matches
// without binding.
type VarPattern struct {
	Name string
}

// NumPattern matches exactly Value.
type NumPattern struct {
	Value uint32
}

func (*CtrPattern) pattern() {}
func (*VarPattern) pattern() {}
func (*NumPattern) pattern() {}

// wildcardVar is the variable name a wildcard pattern elaborates to.
const wildcardVar = "_"

// PatternTerm returns the term an evaluator would see if the shape of p were
// treated as a constructor invocation: constructors become applications of
// a variable named after the constructor.
func PatternTerm(p Pattern) Term {
	switch x := p.(type) {
	case *CtrPattern:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = PatternTerm(a)
		}
		return Call(&Var{Name: x.Name}, args...)

	case *VarPattern:
		if x.Name == "" {
			return &Var{Name: wildcardVar}
		}
		return &Var{Name: x.Name}

	case *NumPattern:
		return &Num{Value: x.Value}

	default:
		panic(fmt.Sprintf("ir: unknown pattern %T", p))
	}
}

// ClonePattern returns a deep copy of p.
func ClonePattern(p Pattern) Pattern {
	switch x := p.(type) {
	case *CtrPattern:
		c := &CtrPattern{Name: x.Name}
		if x.Args != nil {
			c.Args = make([]Pattern, len(x.Args))
			for i, a := range x.Args {
				c.Args[i] = ClonePattern(a)
			}
		}
		return c
	case *VarPattern:
		return &VarPattern{Name: x.Name}
	case *NumPattern:
		return &NumPattern{Value: x.Value}
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("ir: unknown pattern %T", p))
	}
}
