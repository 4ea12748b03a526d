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
)

var (
	// ErrNilInstance is returned when attributes are read from a nil value
	// or through a nil pointer.
	ErrNilInstance = errors.New("reflect: nil instance")
	// ErrNoAttribute is returned when the instance has no attribute by that name.
	ErrNoAttribute = errors.New("reflect: no such attribute")
)

// Attr reads the attribute called name from v. An attribute is, in lookup order:
//
//  1. an exported method taking no arguments and returning one value (a getter),
//     looked up on v itself and then on every value v points to;
//  2. a struct field, exported or not, promoted fields included;
//  3. the entry for key name in a map whose key kind is string.
//
// Values read from unexported fields are returned as-is; they cannot be
// converted with Interface, but can still be inspected.
func Attr(v reflect.Value, name string) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, ErrNilInstance
	}
	for {
		indirect := v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface
		if indirect && v.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}
		if m := getter(v, name); m.IsValid() {
			return m.Call(nil)[0], nil
		}
		if !indirect {
			break
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if sf, ok := v.Type().FieldByName(name); ok {
			f, err := v.FieldByIndexErr(sf.Index)
			if err != nil {
				// Promoted through a nil embedded pointer.
				return reflect.Value{}, ErrNilInstance
			}
			return f, nil
		}
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() == reflect.String {
			if e := v.MapIndex(reflect.ValueOf(name).Convert(kt)); e.IsValid() {
				return e, nil
			}
		}
	}
	return reflect.Value{}, ErrNoAttribute
}

// getter returns the bound method called name if it has the func() T shape.
func getter(v reflect.Value, name string) reflect.Value {
	if !v.CanInterface() {
		return reflect.Value{}
	}
	m := v.MethodByName(name)
	if !m.IsValid() {
		return m
	}
	if mt := m.Type(); mt.NumIn() != 0 || mt.NumOut() != 1 {
		return reflect.Value{}
	}
	return m
}
