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
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"inetlang.org/go/internal/inettest"
)

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:           "testdata/script",
		UpdateScripts: inettest.UpdateGoldenFiles,
		Setup: func(env *testscript.Env) error {
			// Make sure the environment of the caller does not leak in.
			env.Setenv("INET_DEBUG", "")
			env.Setenv("INET_VERSION_TEST_CFG", "")
			return nil
		},
		Condition: inettest.Condition,
	})
}

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"inet": Main,
	}))
}
