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

// Namer lets a type choose its own identifier. When an instance implements
// Namer, its TypeIdentifier wins over registry entries and reflection.
//
// The result describes the type, not the instance: it must not depend on
// field values, and it must be non-empty.
//
//	func (Point) TypeIdentifier() string { return "geom.Point" }
type Namer interface {
	TypeIdentifier() string
}

// NamerFunc adapts a plain function to the Namer interface.
type NamerFunc func() string

// TypeIdentifier implements Namer.
func (f NamerFunc) TypeIdentifier() string {
	return f()
}
