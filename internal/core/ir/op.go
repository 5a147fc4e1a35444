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

// Op indicates the operation of a BinaryExpr.
type Op int

// Values of Op.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Ne
	Lt
	Gt
	And
	Or
	Xor
	Not
	Shl
	Shr

	numOps
)

var opSymbols = [numOps]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	Eq:  "==",
	Ne:  "!=",
	Lt:  "<",
	Gt:  ">",
	And: "&",
	Or:  "|",
	Xor: "^",
	Not: "~",
	Shl: "<<",
	Shr: ">>",
}

// String returns the symbol of the operation as it appears in source.
func (o Op) String() string {
	if o < 0 || o >= numOps {
		panic(fmt.Sprintf("ir: invalid operator %d", int(o)))
	}
	return opSymbols[o]
}

// ParseOp returns the operation denoted by sym.
func ParseOp(sym string) (Op, bool) {
	for op, s := range opSymbols {
		if s == sym {
			return Op(op), true
		}
	}
	return 0, false
}

// Ops returns all operations in declaration order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}
