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

package strategy

import (
	"path"
	"reflect"
	"strings"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
	uref "dirpx.dev/repr/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives "pkg.Type"
// identifiers from the Go type via reflection.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It dereferences pointers via
// Normalize, strips generic instantiation parameters, and can hide builtins.
// Identifiers are recomputed on every call; nothing is memoized.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryIdentify computes the identifier of v's type.
func (reflectStrategy) TryIdentify(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg), true
}

// TryIdentifyType computes the identifier of t.
func (reflectStrategy) TryIdentifyType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType returns "<namespace><sep><name>" for t, or "" when t has no name.
func byType(t reflect.Type, cfg apis.Config) string {
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return ""
	}

	name := stripTypeParams(base.Name())
	pkg := base.PkgPath()
	if pkg == "" {
		// Predeclared types have no namespace to join.
		if !cfg.IncludeBuiltins {
			return ""
		}
		return name
	}
	if !cfg.FullPath {
		pkg = packageName(base)
	}

	sep := cfg.Separator
	if sep == "" {
		sep = config.DefaultSeparator
	}
	return pkg + sep + name
}

// packageName returns the declared package name of a named type, which is
// what t.String() prints in front of the type name. It differs from the
// last import path element for paths like "gopkg.in/yaml.v3".
func packageName(t reflect.Type) string {
	s, suffix := t.String(), "."+t.Name()
	if strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)]
	}
	return path.Base(t.PkgPath())
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
