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
	"strings"

	"dirpx.dev/repr/inspect"
)

// ErrInvalidKeyword is returned by Keywords when a label is not a string.
// Any string is a valid label; it is spliced into the output verbatim.
var ErrInvalidKeyword = errors.New("repr: invalid keyword name")

// Keyword is a labeled value rendered as label=value.
type Keyword struct {
	Label string
	Value any
}

// Keywords builds keyword pairs from alternating labels and values, the way
// log/slog takes attributes:
//
//	kws, err := repr.Keywords("units", "kg", "scale", 2)
//
// A label that is not a string, or a label without a value, fails with
// ErrInvalidKeyword.
func Keywords(kv ...any) ([]Keyword, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: label %v has no value", ErrInvalidKeyword, kv[len(kv)-1])
	}
	out := make([]Keyword, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		label, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: label %v is %T, not string", ErrInvalidKeyword, kv[i], kv[i])
		}
		out = append(out, Keyword{Label: label, Value: kv[i+1]})
	}
	return out, nil
}

// Render returns the constructor-call representation of instance:
//
//	Identifier(arg0, arg1, label0=value0, label1=value1)
//
// Each value is rendered in its inspectable form (see package inspect).
// Arguments and keywords keep the given order; duplicate labels are
// emitted as given. Labels are written verbatim, whatever they contain.
// Render panics with ErrUnidentifiable if instance's type has no identifier.
func Render(instance any, args []any, kwargs []Keyword) string {
	pos := make([]reflect.Value, len(args))
	for i, a := range args {
		pos[i] = reflect.ValueOf(a)
	}
	kws := make([]labeled, len(kwargs))
	for i, kw := range kwargs {
		kws[i] = labeled{label: kw.Label, value: reflect.ValueOf(kw.Value)}
	}
	return render(IdentifierOf(instance), pos, kws)
}

// labeled is a keyword value read off an instance.
type labeled struct {
	label string
	value reflect.Value
}

// render assembles the output once every value has been read and checked.
func render(id string, args []reflect.Value, kwargs []labeled) string {
	var b strings.Builder
	b.WriteString(id)
	b.WriteByte('(')
	for i, v := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(inspect.Value(v))
	}
	for i, kw := range kwargs {
		if i > 0 || len(args) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(kw.label)
		b.WriteByte('=')
		b.WriteString(inspect.Value(kw.value))
	}
	b.WriteByte(')')
	return b.String()
}
