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
	"runtime/debug"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestInetVersion(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
	}
	testCases := []struct {
		name     string
		linked   string
		main     string
		settings []debug.BuildSetting
		want     string
	}{
		{name: "Unknown", main: "(devel)", want: "(devel)"},
		{name: "Module", main: "v0.3.0", settings: vcs, want: "v0.3.0"},
		{name: "Linked", linked: "v1.0.0", main: "v0.3.0", want: "v1.0.0"},
		{name: "Pseudo", main: "(devel)", settings: vcs, want: "v0.0.0-20260304050607-0123456789ab"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func(old string) { version = old }(version)
			version = tc.linked
			bi := &debug.BuildInfo{Main: debug.Module{Version: tc.main}, Settings: tc.settings}
			qt.Assert(t, qt.Equals(inetVersion(bi), tc.want))
		})
	}
}
