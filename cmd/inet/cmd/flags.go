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
	"fmt"

	"github.com/spf13/pflag"
)

// Common flags
const (
	flagDef     flagName = "def"
	flagOut     flagName = "out"
	flagOutFile flagName = "outfile"
	flagRule    flagName = "rule"
	flagStrict  flagName = "strict"
	flagVar     flagName = "var"
	flagVerbose flagName = "verbose"
	flagWith    flagName = "with"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagVerbose), "v", false,
		"print information about progress")
	f.Bool(string(flagStrict), false,
		"validate books before operating on them (same as INET_DEBUG=strict)")
}

func addOutFlags(f *pflag.FlagSet) {
	f.StringP(string(flagOutFile), "o", "",
		"write output to the named file instead of stdout")
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet. Because flagNames are global, it is quite
// easy to accidentally use a flag in a command without adding it to
// the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) Int(cmd *Command) int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
