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

// Package inettxtar runs golden tests stored as txtar archives.
//
// Each archive under a root directory is one test. Input files are read
// from the archive by the test function, which writes its results to named
// outputs; each output is compared against the archive file out/<name>/...
package inettxtar

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/txtar"

	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/encoding/yaml"
	"inetlang.org/go/internal/inettest"
)

// A TxTarTest represents a test run that processes all txtar tests rooted
// in a given directory.
type TxTarTest struct {
	// Run TxTarTest on this directory.
	Root string

	// Name is a unique name for this test. The golden file for this test is
	// derived from the out/<name> file in the .txtar file.
	Name string

	// If Update is true, Run updates the golden outputs that differ
	// instead of failing.
	Update bool

	// Skip is a map of tests to skip to their skip message.
	Skip map[string]string
}

// A Test represents a single test based on a .txtar file.
//
// A Test embeds *testing.T and should be used to report errors. Writing to
// a Test writes to its default output, out/<name>.
type Test struct {
	*testing.T

	prefix   string
	buf      *bytes.Buffer // the default output
	outFiles []file

	Archive *txtar.Archive

	// The absolute path of the current test directory.
	Dir string
}

type file struct {
	name string
	buf  *bytes.Buffer
}

func (t *Test) Write(b []byte) (n int, err error) {
	if t.buf == nil {
		t.buf = &bytes.Buffer{}
		t.outFiles = append(t.outFiles, file{t.prefix, t.buf})
	}
	return t.buf.Write(b)
}

// Writer returns a Writer for the output with the given name, relative to
// the default output.
func (t *Test) Writer(name string) io.Writer {
	switch name {
	case "":
		name = t.prefix
	default:
		name = path.Join(t.prefix, name)
	}
	for _, f := range t.outFiles {
		if f.name == name {
			return f.buf
		}
	}
	w := &bytes.Buffer{}
	t.outFiles = append(t.outFiles, file{name, w})
	if name == t.prefix {
		t.buf = w
	}
	return w
}

// HasTag reports whether the archive comment has a line "#key".
func (t *Test) HasTag(key string) bool {
	prefix := []byte("#" + key)
	s := bufio.NewScanner(bytes.NewReader(t.Archive.Comment))
	for s.Scan() {
		if bytes.Equal(bytes.TrimSpace(s.Bytes()), prefix) {
			return true
		}
	}
	return false
}

// Value returns the value of a comment line "#key: value".
func (t *Test) Value(key string) (value string, ok bool) {
	prefix := []byte("#" + key + ":")
	s := bufio.NewScanner(bytes.NewReader(t.Archive.Comment))
	for s.Scan() {
		b := s.Bytes()
		if bytes.HasPrefix(b, prefix) {
			return string(bytes.TrimSpace(b[len(prefix):])), true
		}
	}
	return "", false
}

// File returns the contents of the named archive file.
func (t *Test) File(name string) (data []byte, ok bool) {
	for _, f := range t.Archive.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// Book decodes the archive file in.yaml. It fails the test if the file is
// missing or does not decode.
func (t *Test) Book() *ir.Book {
	t.Helper()
	data, ok := t.File("in.yaml")
	if !ok {
		t.Fatal("archive has no in.yaml")
	}
	b, err := yaml.Decode("in.yaml", data)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// Run runs tests defined in txtar files in root or its subdirectories.
func (x *TxTarTest) Run(t *testing.T, f func(tc *Test)) {
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	err = filepath.Walk(x.Root, func(fullpath string, info os.FileInfo, err error) error {
		if err != nil {
			t.Fatal(err)
		}
		if info.IsDir() || filepath.Ext(fullpath) != ".txtar" {
			return nil
		}

		str := filepath.ToSlash(fullpath)
		p := strings.Index(str, "testdata/")
		testName := str[p+len("testdata/") : len(str)-len(".txtar")]

		t.Run(testName, func(t *testing.T) {
			a, err := txtar.ParseFile(fullpath)
			if err != nil {
				t.Fatalf("error parsing txtar file: %v", err)
			}

			tc := &Test{
				T:       t,
				Archive: a,
				Dir:     filepath.Dir(filepath.Join(dir, fullpath)),
				prefix:  path.Join("out", x.Name),
			}

			if tc.HasTag("skip") {
				t.Skip()
			}
			if msg, ok := x.Skip[testName]; ok {
				t.Skip(msg)
			}

			f(tc)

			update := false
			for _, sub := range tc.outFiles {
				var gold *txtar.File
				for i, f := range a.Files {
					if f.Name == sub.name {
						gold = &a.Files[i]
					}
				}

				result := sub.buf.Bytes()

				switch {
				case gold == nil:
					a.Files = append(a.Files, txtar.File{Name: sub.name})
					gold = &a.Files[len(a.Files)-1]

				case bytes.Equal(gold.Data, result):
					continue
				}

				if x.Update || inettest.UpdateGoldenFiles {
					update = true
					gold.Data = result
					continue
				}

				t.Errorf("result for %s differs: (-want +got)\n%s",
					sub.name,
					cmp.Diff(string(gold.Data), string(result)))
			}

			if update {
				err = os.WriteFile(fullpath, txtar.Format(a), 0o644)
				if err != nil {
					t.Fatal(err)
				}
			}
		})

		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
