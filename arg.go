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

package repr

import (
	"errors"
	"fmt"
	"reflect"

	uref "dirpx.dev/repr/utils/reflect"
)

// ErrMissingAttribute is wrapped by every *AttributeError.
var ErrMissingAttribute = errors.New("repr: missing attribute")

// AttributeError reports an attribute that could not be read from an instance.
type AttributeError struct {
	// Type is the instance's type; nil for a nil instance.
	Type reflect.Type
	// Name is the attribute name, or the accessor name for Func.
	Name string
	// Err is the underlying cause.
	Err error
}

func (e *AttributeError) Error() string {
	msg := fmt.Sprintf("repr: missing attribute %q on %v", e.Name, e.Type)
	if e.Err != nil && !errors.Is(e.Err, uref.ErrNoAttribute) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrMissingAttribute and the cause.
func (e *AttributeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingAttribute}
	}
	return []error{ErrMissingAttribute, e.Err}
}

// Arg is one entry of a representation: which attribute to read and, for
// keyword output, under which label.
type Arg struct {
	label string
	attr  string
	get   func(instance any) (reflect.Value, error)
}

// Name returns an Arg reading attribute attr. As a keyword it is labeled attr.
func Name(attr string) Arg {
	return Arg{attr: attr}
}

// Pair returns a keyword Arg reading attribute attr, labeled label.
func Pair(label, attr string) Arg {
	return Arg{label: label, attr: attr}
}

// Func returns an Arg that reads its value with fn instead of looking up an
// attribute by name. name is used as the keyword label and in errors. An
// instance of type *T is accepted by an accessor over T.
//
//	repr.Func("area", func(r Rect) any { return r.w * r.h })
func Func[T any](name string, fn func(T) any) Arg {
	want := reflect.TypeFor[T]()
	return Arg{attr: name, get: func(instance any) (reflect.Value, error) {
		x, ok := instance.(T)
		if !ok {
			rv := reflect.ValueOf(instance)
			if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Type().Elem() == want {
				x, ok = rv.Elem().Interface().(T)
			}
		}
		if !ok {
			return reflect.Value{}, &AttributeError{
				Type: reflect.TypeOf(instance),
				Name: name,
				Err:  fmt.Errorf("accessor reads %v", want),
			}
		}
		return reflect.ValueOf(fn(x)), nil
	}}
}

// As returns a copy of a with keyword label label. Name("x").As("arg") is Pair("arg", "x").
func (a Arg) As(label string) Arg {
	a.label = label
	return a
}

// Label returns the keyword label: the explicit one, or the attribute name.
func (a Arg) Label() string {
	if a.label != "" {
		return a.label
	}
	return a.attr
}

// Attr returns the attribute (or accessor) name.
func (a Arg) Attr() string {
	return a.attr
}

// IsPair reports whether a carries an explicit label.
func (a Arg) IsPair() bool {
	return a.label != ""
}

func (a Arg) String() string {
	if a.label != "" {
		return "(" + a.label + ", " + a.attr + ")"
	}
	return a.attr
}

// read returns the value of a on instance.
func (a Arg) read(instance any) (reflect.Value, error) {
	if a.get != nil {
		return a.get(instance)
	}
	v, err := uref.Attr(reflect.ValueOf(instance), a.attr)
	if err != nil {
		return reflect.Value{}, &AttributeError{Type: reflect.TypeOf(instance), Name: a.attr, Err: err}
	}
	return v, nil
}

// keyword expands a to its (label, attr) form: a bare name labels itself.
func (a Arg) keyword() Arg {
	a.label = a.Label()
	return a
}
