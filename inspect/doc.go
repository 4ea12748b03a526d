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

// Package inspect renders Go values in their inspectable form: the literal
// syntax a reader could paste back into Go source to rebuild the value.
//
//	inspect.String("mass\n")              // "mass\n" (quoted, escaped)
//	inspect.String([]int{1, 2})           // []int{1, 2}
//	inspect.String(map[string]int{"a": 1}) // map[string]int{"a": 1}
//	inspect.String(&Point{X: 1})          // &geom.Point{X: 1, Y: 0}
//
// Values implementing fmt.GoStringer are rendered with GoString, at any
// depth. This is how a type with its own representation hook shows up
// correctly when nested inside another value.
//
// The output is deterministic: map entries are sorted by key. It is never
// truncated or wrapped, and reference cycles are not detected; a value
// that points back to itself recurses until the stack is exhausted.
package inspect
