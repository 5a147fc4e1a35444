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

// Package inetdebug holds the INET_DEBUG configuration.
package inetdebug

import (
	"sync"

	"inetlang.org/go/internal/envflag"
)

// EnvVar is the environment variable holding the debug flags.
const EnvVar = "INET_DEBUG"

// Flags holds the set of global INET_DEBUG flags. It is initialized by Init.
var Flags Config

// Config holds the known INET_DEBUG flags.
//
// When adding, deleting, or modifying entries below,
// update the help text of the inet command as well.
type Config struct {
	// Strict enables invariant checks that are too expensive or too strict
	// to run by default. With Strict set, substitution panics when it would
	// capture a free variable of the replacement, and the inet command
	// validates books before operating on them.
	Strict bool

	// LogSubst sets the log level for substitution.
	//
	//	0: no logging
	//	1: log each replaced occurrence at debug level
	LogSubst int

	// SortDefs renders definitions sorted by name rather than in
	// insertion order.
	SortDefs bool
}

// Init initializes Flags. It is not an init function so that the failure
// mode is an error rather than a panic, and so that commands which do not
// need it, like "inet help", do not fail on a bad INET_DEBUG.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	return envflag.Init(&Flags, EnvVar)
})
