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

package names_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-quicktest/qt"

	"inetlang.org/go/internal/core/names"
)

func TestInsert(t *testing.T) {
	r := names.New()
	in := []string{"main", "Cons", "Nil", "λ-lifted", "foo.bar"}

	prev := -1
	for _, name := range in {
		id := r.Insert(name)
		qt.Assert(t, qt.IsTrue(int(id) > prev), qt.Commentf("id for %q", name))
		prev = int(id)
	}
	qt.Assert(t, qt.Equals(r.Len(), len(in)))

	for i, name := range in {
		id, ok := r.ID(name)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(id, names.ID(i)))

		got, ok := r.Name(id)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(got, name))

		qt.Check(t, qt.IsTrue(r.ContainsName(name)))
		qt.Check(t, qt.IsTrue(r.ContainsID(id)))
	}
	qt.Assert(t, qt.DeepEquals(r.Names(), in))
}

func TestLookupMissing(t *testing.T) {
	r := names.New()
	r.Insert("main")

	_, ok := r.ID("other")
	qt.Check(t, qt.IsFalse(ok))
	name, ok := r.Name(7)
	qt.Check(t, qt.IsFalse(ok))
	qt.Check(t, qt.Equals(name, ""))
	qt.Check(t, qt.IsFalse(r.ContainsName("other")))
	qt.Check(t, qt.IsFalse(r.ContainsID(1)))
}

func TestInsertDuplicate(t *testing.T) {
	r := names.New()
	qt.Assert(t, qt.Equals(r.Insert("main"), names.ID(0)))
	qt.Assert(t, qt.PanicMatches(func() {
		r.Insert("main")
	}, `names: "main" already registered with id 0`))

	// The failed insert must not have consumed an ID.
	qt.Assert(t, qt.Equals(r.Insert("next"), names.ID(1)))
}

func TestZeroRegistry(t *testing.T) {
	var r names.Registry
	qt.Assert(t, qt.Equals(r.Insert("a"), names.ID(0)))
	qt.Assert(t, qt.IsTrue(r.ContainsName("a")))
}

func TestConcurrentReads(t *testing.T) {
	r := names.New()
	const n = 100
	for i := 0; i < n; i++ {
		r.Insert(fmt.Sprintf("def%d", i))
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				id, ok := r.ID(fmt.Sprintf("def%d", i))
				if !ok || id != names.ID(i) {
					t.Errorf("ID(def%d) = %d, %v", i, id, ok)
				}
				if name, _ := r.Name(names.ID(i)); name != fmt.Sprintf("def%d", i) {
					t.Errorf("Name(%d) = %q", i, name)
				}
			}
		}()
	}
	wg.Wait()
}
