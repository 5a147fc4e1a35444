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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"inetlang.org/go/internal/core/ir"
	"inetlang.org/go/internal/core/validate"
	"inetlang.org/go/internal/encoding/yaml"
	"inetlang.org/go/internal/inetdebug"
)

// stdinName is the file name that denotes standard input.
const stdinName = "-"

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

// exitOnErr prints err, one line per joined error, and exits if fatal is
// set.
func exitOnErr(cmd *Command, err error, fatal bool) {
	if err == nil {
		return
	}

	// Link x/text as our localizer.
	p := message.NewPrinter(getLang())

	w := &bytes.Buffer{}
	for _, e := range unwrapJoined(err) {
		p.Fprintf(w, "%v\n", e)
	}
	_, _ = cmd.Stderr().Write(w.Bytes())
	if fatal {
		exit()
	}
}

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []error
		for _, e := range j.Unwrap() {
			errs = append(errs, unwrapJoined(e)...)
		}
		return errs
	}
	return []error{err}
}

// fileError prefixes each error joined in err with the name of the file
// it was found in.
func fileError(filename string, err error) error {
	var errs []error
	for _, e := range unwrapJoined(err) {
		errs = append(errs, fmt.Errorf("%s: %w", filename, e))
	}
	return errors.Join(errs...)
}

func strict(cmd *Command) bool {
	return flagStrict.Bool(cmd) || inetdebug.Flags.Strict
}

// readBook decodes the named book, or standard input for "-". In strict
// mode the book is validated as well.
func readBook(cmd *Command, filename string) (*ir.Book, error) {
	var data []byte
	var err error
	if filename == stdinName {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(filename)
	}
	filename = displayName(filename)
	if err != nil {
		return nil, err
	}
	b, err := yaml.Decode(filename, data)
	if err != nil {
		return nil, err
	}
	slog.Debug("decoded book", "file", filename, "defs", len(b.Defs))

	if strict(cmd) {
		if err := validate.Book(b, &validate.Config{AllErrors: true}); err != nil {
			return nil, fileError(filename, err)
		}
	}
	return b, nil
}

// displayName returns the name used for filename in messages.
func displayName(filename string) string {
	if filename == stdinName {
		return "<stdin>"
	}
	return filename
}

// filesOrStdin returns args, or standard input if there are none.
func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

// withOutput calls f with the writer for the command's output: the file
// named by --outfile, or stdout. The file is closed when f returns, also
// when f panics to exit.
func withOutput(cmd *Command, f func(w io.Writer) error) (err error) {
	name := flagOutFile.String(cmd)
	if name == "" || name == stdinName {
		return f(cmd.OutOrStdout())
	}
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return f(file)
}
