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

package ir

// Call folds args onto fun with left-associated applications, so that
// Call(f, a, b) is ((f a) b). Call(f) returns f.
func Call(fun Term, args ...Term) Term {
	for _, a := range args {
		fun = &App{Fun: fun, Arg: a}
	}
	return fun
}

// Spine is the inverse of Call: it returns the head of a chain of
// applications and its arguments in order.
func Spine(t Term) (fun Term, args []Term) {
	for {
		app, ok := t.(*App)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		t = app.Fun
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return t, args
}
