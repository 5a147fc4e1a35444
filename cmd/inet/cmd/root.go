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

// Package cmd implements the inet command.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"inetlang.org/go/internal/inetdebug"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		if err := c.setup(); err != nil {
			return err
		}
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "inet",
		Short: "inet inspects and transforms interaction-net programs.",
		Long: `inet reads books of definitions written in YAML and renders,
checks and transforms their intermediate representation.

A book maps definition names to rules:

	id:
	- pats: [x]
	  body: {var: x}
	main:
	- body: {app: [{ref: id}, 42]}

Run 'inet fmt book.yaml' to print such a book in the concrete syntax of the
language:

	(id x) = x

	(main) = (id 42)

The INET_DEBUG environment variable holds a comma-separated list of debug
flags:

	strict      validate books before use and fail on substitutions
	            that would capture a variable
	logsubst=1  log every substituted occurrence (use with -v)
	sortdefs    render definitions sorted by name`,

		SilenceUsage: true,
		// Main prints returned errors.
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newElabCmd(c),
		newFmtCmd(c),
		newSubstCmd(c),
		newVersionCmd(c),
		newVetCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// Main runs the inet tool and returns the code for passing to os.Exit.
func Main() int {
	err := mainErr(context.Background(), os.Args[1:])
	if err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	cmd, err := New(args)
	if err != nil {
		return err
	}
	return cmd.Run(ctx)
}

type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command

	hasErr bool
}

// setup applies the global configuration before a command runs.
func (c *Command) setup() error {
	if err := inetdebug.Init(); err != nil {
		return err
	}
	level := slog.LevelInfo
	if flagVerbose.Bool(c) {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Keep log lines stable across runs.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(h))
	return nil
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = true
	return c.Command.OutOrStderr().Write(b)
}

// Hint: search for uses of OutOrStderr other than the one here to see
// which output does not trigger a non-zero exit code. os.Stderr may never
// be used directly.

// Stderr returns a writer that should be used for error messages.
// Anything written to it makes the command exit with a non-zero status.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

func (c *Command) SetOutput(w io.Writer) {
	c.root.SetOut(w)
	c.root.SetErr(w)
}

func (c *Command) SetInput(r io.Reader) {
	c.root.SetIn(r)
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = errors.New("terminating because of errors")

func (c *Command) Run(ctx context.Context) (err error) {
	defer recoverError(&err)

	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

func recoverError(err *error) {
	switch e := recover().(type) {
	case nil:
	case panicError:
		*err = e.Err
	default:
		panic(e)
	}
	// We use panic to escape, instead of os.Exit
}

// New creates the inet command for the given arguments, excluding the
// program name.
func New(args []string) (cmd *Command, err error) {
	defer recoverError(&err)

	cmd = newRootCmd()
	cmd.root.SetArgs(args)
	return cmd, nil
}

type panicError struct {
	Err error
}

func exit() {
	panic(panicError{ErrPrintedError})
}
