/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Registry holds explicit identifiers for known types. An entry overrides
// the identifier reflection would derive, which is how a type is given a
// stable header such as "geom.Point" regardless of where it lives.
type Registry interface {
	// Register associates the nearest named type of t with identifier.
	// Re-registering the same pair is a no-op; a different identifier for
	// an already registered type is an error.
	Register(t reflect.Type, identifier string) error
	// Lookup returns the identifier registered for t, if any.
	Lookup(t reflect.Type) (identifier string, ok bool)
	// Entries returns a snapshot of all entries (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, identifier) association in a Registry snapshot.
type Entry struct {
	Type       reflect.Type
	Identifier string
}
