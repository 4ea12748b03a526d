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

// Config carries read-only knobs that influence how type identifiers are derived.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// IncludeBuiltins controls whether predeclared types without a package
	// (e.g., "int", "string") resolve to their bare name. If false, such
	// types are unidentifiable.
	IncludeBuiltins bool

	// MaxUnwrap limits how many pointer levels are dereferenced while
	// looking for the named type behind an instance (**T -> T).
	// Zero or negative values mean the default depth.
	MaxUnwrap int

	// FullPath selects the namespace part of an identifier: the full import
	// path ("example.com/geom.Point") when true, the package name
	// ("geom.Point") otherwise.
	FullPath bool

	// Separator joins the namespace and the short type name.
	Separator string
}
