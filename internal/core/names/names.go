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

// Package names maps definition names to the compact integer identifiers
// used by references in the IR.
package names

import (
	"fmt"
	"sync"
)

// An ID identifies a top-level definition.
type ID uint32

// A Registry is a bidirectional mapping between definition names and IDs.
//
// IDs are allocated sequentially starting at 0 and a pair, once inserted, is
// never changed. Lookups may be done concurrently. Insert is expected to be
// called from a single goroutine, typically while a compilation unit is
// being populated.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]ID
	names  []string // indexed by ID; len(names) is the next ID.
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byName: map[string]ID{}}
}

// Insert allocates the next ID for name and records the pair.
//
// Registering the same name twice is a logic error in the caller and
// Insert panics if it happens.
func (r *Registry) Insert(name string) ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byName == nil {
		r.byName = map[string]ID{}
	}
	if id, ok := r.byName[name]; ok {
		panic(fmt.Sprintf("names: %q already registered with id %d", name, id))
	}
	id := ID(len(r.names))
	r.byName[name] = id
	r.names = append(r.names, name)
	return id
}

// Name reports the name registered for id.
func (r *Registry) Name(id ID) (name string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if int(id) >= len(r.names) {
		return "", false
	}
	return r.names[id], true
}

// ID reports the ID registered for name.
func (r *Registry) ID(name string) (id ID, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok = r.byName[name]
	return id, ok
}

func (r *Registry) ContainsName(name string) bool {
	_, ok := r.ID(name)
	return ok
}

func (r *Registry) ContainsID(id ID) bool {
	_, ok := r.Name(id)
	return ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Names returns the registered names in ID order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}
