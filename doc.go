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

// Package repr builds constructor-call debug representations of Go values:
//
//	geom.Point(3, 4, units="m")
//
// A representation is the value's identifier followed by an ordered list
// of positional values and labeled keyword values, each rendered in the
// inspectable form of package inspect: strings quoted and escaped, composite
// values written as Go literals.
//
// # Identifiers
//
// Identifier, IdentifierOf and IdentifierFor turn a type into "pkg.Type".
// The answer comes from a read-mostly global snapshot holding four things:
//
//   - Config: how types are normalized and joined (pointer unwrap depth,
//     builtins, package name or full import path, separator).
//   - Registry: explicit identifiers registered with RegisterType.
//   - Resolver: an ordered chain of strategies. A value implementing
//     apis.Namer names itself; then the registry is consulted; then the
//     identifier is derived from reflection.
//   - Builder: constructs the registry and resolver for a Config.
//
// Readers load the snapshot atomically and never lock. Writers (SetConfig,
// SetRegistry, SetResolver, SetResolverBuilder, SetAll) serialize on a
// mutex, derive a new snapshot and publish it. SetRegistry and SetResolver
// pin their layer so configuration changes leave it alone until
// UnpinRegistry or UnpinResolver.
//
// Identifiers are never cached: every call asks the current resolver.
//
// # Rendering
//
// Render formats an instance with explicit values:
//
//	kws, err := repr.Keywords("units", "m")
//	s := repr.Render(p, []any{3, 4}, kws)
//
// Keywords takes alternating labels and values; a label that is not a
// string fails with ErrInvalidKeyword before any output is produced. String
// labels are written as given.
//
// # Bindings
//
// A Bound reads the values off the instance instead. It is built once,
// usually into a package-level variable, and installed as the type's
// GoString method so that %#v, package inspect and anything else that
// honors fmt.GoStringer use it:
//
//	var pointRepr = repr.MustBuild("X", "Y", []string{"Units"}, repr.Pair("origin", "Origin"))
//
//	func (p Point) GoString() string { return pointRepr.MustDescribe(p) }
//
// Attributes are exported fields (promoted fields included), exported
// niladic methods returning one value, or keys of a string-keyed map.
// A missing attribute fails with an *AttributeError.
//
// Bound.Bind ties a Bound to one instance. The resulting Hook renders lazily
// and implements fmt.Stringer, fmt.GoStringer and slog.LogValuer, so it can
// be passed straight to a logger.
//
// Bindings can also be declared in JSONC or YAML and loaded with package
// catalog.
package repr
