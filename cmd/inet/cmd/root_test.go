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

package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestHelp(t *testing.T) {
	run := func(args ...string) error {
		cmd, _ := New(args)
		cmd.SetOutput(io.Discard)
		return cmd.Run(context.Background())
	}
	for _, args := range [][]string{
		{"help"},
		{"--help"},
		{"-h"},
		{"help", "fmt"},
		{"fmt", "--help"},
		{"subst", "-h"},
		{"help", "vet"},
		{"elab", "--help"},
	} {
		if err := run(args...); err != nil {
			t.Errorf("%v failed unexpectedly: %v", args, err)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd, err := New([]string{"frobnicate"})
	qt.Assert(t, qt.IsNil(err))
	cmd.SetOutput(io.Discard)
	err = cmd.Run(context.Background())
	qt.Assert(t, qt.ErrorMatches(err, `unknown command "frobnicate" for "inet"`))
}

func TestFmtStdin(t *testing.T) {
	cmd, err := New([]string{"fmt"})
	qt.Assert(t, qt.IsNil(err))
	var out bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetInput(strings.NewReader("main: [{body: 42}]\n"))
	qt.Assert(t, qt.IsNil(cmd.Run(context.Background())))
	qt.Assert(t, qt.Equals(out.String(), "(main) = 42\n"))
}

func TestFmtErrorExits(t *testing.T) {
	cmd, err := New([]string{"fmt"})
	qt.Assert(t, qt.IsNil(err))
	var out bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetInput(strings.NewReader("main: [{body: {ref: nope}}]\n"))
	err = cmd.Run(context.Background())
	qt.Assert(t, qt.Equals(err, ErrPrintedError))
	qt.Assert(t, qt.Equals(out.String(), "<stdin>:1: reference to undefined definition \"nope\"\n"))
}
