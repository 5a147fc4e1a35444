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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"

	"inetlang.org/go/internal/envflag"
	"inetlang.org/go/internal/inetdebug"
)

func newVersionCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print inet version",
		Long: `Version prints the version of inet and of the Go toolchain that built
it, the INET_DEBUG flags in effect and the build settings recorded in the
binary.
`,
		Args: cobra.NoArgs,
		RunE: mkRunE(c, runVersion),
	}
	return cmd
}

// version may be set at link time with
// -ldflags='-X inetlang.org/go/cmd/inet/cmd.version=<version>'.
var version = ""

// buildInfoEnv adds JSON-encoded build settings to those of the binary.
const buildInfoEnv = "INET_VERSION_TEST_CFG"

func runVersion(cmd *Command, args []string) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("binary carries no build information")
	}
	if v := os.Getenv(buildInfoEnv); v != "" {
		var extra []debug.BuildSetting
		if err := json.Unmarshal([]byte(v), &extra); err != nil {
			return fmt.Errorf("invalid %s: %w", buildInfoEnv, err)
		}
		bi.Settings = append(bi.Settings, extra...)
	}
	flags, err := envflag.Format(&inetdebug.Flags)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "inet version %s\n\n", inetVersion(bi))
	fmt.Fprintf(w, "%16s %s\n", "go", runtime.Version())
	if flags != "" {
		fmt.Fprintf(w, "%16s %s\n", inetdebug.EnvVar, flags)
	}
	writeSettings(w, bi.Settings)
	return nil
}

// inetVersion returns, in order of preference, the version set at link
// time, the module version of the main package, or a pseudo-version
// derived from the VCS settings. It returns "(devel)" if none is known.
func inetVersion(bi *debug.BuildInfo) string {
	if version != "" {
		return version
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	var rev string
	var at time.Time
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at, _ = time.Parse(time.RFC3339Nano, s.Value)
		}
	}
	if rev == "" {
		return "(devel)"
	}
	// Pseudo-versions use a 12 character revision prefix.
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return module.PseudoVersion("", "", at, rev)
}

func writeSettings(w io.Writer, settings []debug.BuildSetting) {
	for _, s := range settings {
		if s.Value != "" {
			fmt.Fprintf(w, "%16s %s\n", s.Key, s.Value)
		}
	}
}
