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

package yaml_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"inetlang.org/go/internal/core/debug"
	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/names"
	"inetlang.org/go/internal/encoding/yaml"
	"inetlang.org/go/internal/inettxtar"
)

func TestDecode(t *testing.T) {
	test := inettxtar.TxTarTest{
		Root: "./testdata",
		Name: "decode",
	}
	test.Run(t, func(t *inettxtar.Test) {
		b := t.Book()
		fmt.Fprintln(t, debug.BookString(b))

		// Encoding and decoding again must give the same book.
		data, err := yaml.Encode(b)
		qt.Assert(t, qt.IsNil(err))
		b2, err := yaml.Decode("encoded.yaml", data)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("encoded:\n%s", data))
		qt.Assert(t, qt.DeepEquals(b2.Names.Names(), b.Names.Names()))
		if diff := cmp.Diff(b.Defs, b2.Defs); diff != "" {
			t.Errorf("round trip differs (-want +got):\n%s", diff)
		}
	})
}

func TestDecodeEmpty(t *testing.T) {
	for _, in := range []string{"", "# nothing here\n"} {
		b, err := yaml.Decode("empty.yaml", []byte(in))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.HasLen(b.Defs, 0))
		qt.Assert(t, qt.Equals(b.Names.Len(), 0))
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		err  string
	}{{
		name: "NotAMapping",
		in:   "[1, 2]",
		err:  `x.yaml:1: book must be a mapping from definition names to rules`,
	}, {
		name: "Redeclared",
		in:   "main: [{body: 1}]\nmain: [{body: 2}]",
		err:  `x.yaml:2: definition "main" redeclared`,
	}, {
		name: "NoRules",
		in:   "main: []",
		err:  `x.yaml:1: definition must be a non-empty sequence of rules`,
	}, {
		name: "NoBody",
		in:   "main: [{pats: [x]}]",
		err:  `x.yaml:1: rule has no body`,
	}, {
		name: "UnknownRuleKey",
		in:   "main:\n- body: 1\n  where: 2",
		err:  `x.yaml:3: unexpected key "where"; allowed keys are body, pats`,
	}, {
		name: "BareVariable",
		in:   "main: [{body: x}]",
		err:  `x.yaml:1: unexpected scalar "x": variables are written {var: x}`,
	}, {
		name: "UndefinedRef",
		in:   "main: [{body: {ref: other}}]",
		err:  `x.yaml:1: reference to undefined definition "other"`,
	}, {
		name: "TwoKinds",
		in:   "main: [{body: {var: x, lnk: y}}]",
		err:  `x.yaml:1: term has both "var" and "lnk" keys`,
	}, {
		name: "MissingKey",
		in:   "main: [{body: {let: x, value: 1}}]",
		err:  `x.yaml:1: let term requires a "next" key`,
	}, {
		name: "UnknownKind",
		in:   "main: [{body: {foo: 1}}]",
		err:  `x.yaml:1: cannot determine kind of term`,
	}, {
		name: "ShortApp",
		in:   "main: [{body: {app: [{var: f}]}}]",
		err:  `x.yaml:1: application needs a function and at least one argument`,
	}, {
		name: "BadSup",
		in:   "main: [{body: {sup: [1, 2, 3]}}]",
		err:  `x.yaml:1: expected 2 elements, found 3`,
	}, {
		name: "BadOp",
		in:   "main: [{body: {op: '**', x: 1, y: 2}}]",
		err:  `x.yaml:1: unknown operator "\*\*"`,
	}, {
		name: "NumberTooLarge",
		in:   "main: [{body: 4294967296}]",
		err:  `x.yaml:1: invalid number "4294967296": must be an unsigned 32-bit integer`,
	}, {
		name: "NegativeNumber",
		in:   "main: [{pats: [-1], body: 0}]",
		err:  `x.yaml:1: invalid number "-1": must be an unsigned 32-bit integer`,
	}, {
		name: "PatternWithoutCtr",
		in:   "main: [{pats: [{args: []}], body: 0}]",
		err:  `x.yaml:1: pattern mapping must have a ctr key`,
	}, {
		name: "Syntax",
		in:   "main: [\n",
		err:  `x.yaml:.*`,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := yaml.Decode("x.yaml", []byte(tc.in))
			qt.Assert(t, qt.ErrorMatches(err, tc.err))
		})
	}
}

func TestDecodeTerm(t *testing.T) {
	r := names.New()
	r.Insert("main")

	term, err := yaml.DecodeTerm(r, "with", []byte("{app: [{ref: main}, 1, {lnk: k}]}"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(debug.TermString(r, term), "((main 1) $k)"))

	term, err = yaml.DecodeTerm(nil, "with", []byte(`"*"`))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals[ir.Term](term, &ir.Erase{}))

	_, err = yaml.DecodeTerm(nil, "with", []byte(""))
	qt.Assert(t, qt.ErrorMatches(err, `with: empty term`))

	_, err = yaml.DecodeTerm(nil, "with", []byte("{ref: main}"))
	qt.Assert(t, qt.ErrorMatches(err, `with:1: reference to undefined definition "main"`))
}

func TestNormalization(t *testing.T) {
	// The key uses a combining accent; the reference is precomposed.
	in := "cafe\u0301: [{body: {ref: caf\u00e9}}]"
	b, err := yaml.Decode("n.yaml", []byte(in))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(b.Names.Names(), []string{"caf\u00e9"}))
	qt.Assert(t, qt.Equals(debug.BookString(b), "(caf\u00e9) = caf\u00e9"))
}

func TestAliases(t *testing.T) {
	in := `
id:
- pats: [x]
  body: &x {var: x}
main:
- body: {app: [{ref: id}, *x]}
`
	b, err := yaml.Decode("a.yaml", []byte(in))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(debug.BookString(b), "(id x) = x\n\n(main) = (id x)"))

	// Decoded aliases must not share nodes.
	main := b.Lookup("main").Rules[0].Body.(*ir.App)
	qt.Assert(t, qt.IsFalse(main.Arg == b.Lookup("id").Rules[0].Body))
}
