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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type (e.g., anonymous struct, func, []int).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
)

// Normalize dereferences unnamed pointer types up to cfg.MaxUnwrap levels and
// returns the named type behind them, or an error if there is none.
//
//   - T, *T, **T            -> T
//   - type P *T             -> P (named pointers are kept)
//   - []T, map[K]V, func()  -> ErrReflectTypeNotNamed
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Name() == "" && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}

	if t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}
