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

package inspect

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// opaque renders values with no literal syntax (channels, funcs, pointers
// to scalars). Pointers print their pointee rather than an address.
var opaque = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

var (
	goStringerType = reflect.TypeFor[fmt.GoStringer]()
	byteType       = reflect.TypeFor[byte]()
)

// String returns the inspectable form of v.
func String(v any) string {
	return Value(reflect.ValueOf(v))
}

// Value returns the inspectable form of rv. rv may come from an unexported
// struct field; such values are rendered structurally since their methods
// cannot be called.
func Value(rv reflect.Value) string {
	var p printer
	p.value(rv)
	return p.String()
}

type printer struct {
	strings.Builder
}

func (p *printer) value(v reflect.Value) {
	if !v.IsValid() {
		p.WriteString("nil")
		return
	}
	if p.hook(v) {
		return
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			p.WriteString("nil")
			return
		}
		p.value(v.Elem())
	case reflect.Bool:
		p.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		p.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Uintptr:
		p.WriteString("0x" + strconv.FormatUint(v.Uint(), 16))
	case reflect.Float32, reflect.Float64:
		p.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()))
	case reflect.Complex64, reflect.Complex128:
		p.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
	case reflect.String:
		p.WriteString(strconv.Quote(v.String()))
	case reflect.Slice:
		p.slice(v)
	case reflect.Array:
		p.elems(v)
	case reflect.Map:
		p.mapping(v)
	case reflect.Struct:
		p.structure(v)
	case reflect.Pointer:
		p.pointer(v)
	default:
		p.opaque(v)
	}
}

// hook renders v through its GoString method, if it has one that can be called.
func (p *printer) hook(v reflect.Value) bool {
	if !v.CanInterface() || !v.Type().Implements(goStringerType) {
		return false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	if v.Kind() == reflect.Interface {
		// Let the dynamic value decide.
		return false
	}
	p.WriteString(v.Interface().(fmt.GoStringer).GoString())
	return true
}

func (p *printer) slice(v reflect.Value) {
	if v.IsNil() {
		p.typed(v, "nil")
		return
	}
	if v.Type().Elem().Kind() == reflect.Uint8 {
		p.typed(v, strconv.Quote(string(v.Bytes())))
		return
	}
	p.elems(v)
}

// elems writes T{e0, e1, ...} for slices and arrays.
func (p *printer) elems(v reflect.Value) {
	p.WriteString(v.Type().String())
	p.WriteByte('{')
	for i := range v.Len() {
		if i > 0 {
			p.WriteString(", ")
		}
		p.value(v.Index(i))
	}
	p.WriteByte('}')
}

func (p *printer) mapping(v reflect.Value) {
	if v.IsNil() {
		p.typed(v, "nil")
		return
	}

	type entry struct {
		key      reflect.Value
		rendered string
		val      string
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:      iter.Key(),
			rendered: Value(iter.Key()),
			val:      Value(iter.Value()),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c, ok := compareKeys(a.key, b.key); ok && c != 0 {
			return c
		}
		return strings.Compare(a.rendered, b.rendered)
	})

	p.WriteString(v.Type().String())
	p.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			p.WriteString(", ")
		}
		p.WriteString(e.rendered)
		p.WriteString(": ")
		p.WriteString(e.val)
	}
	p.WriteByte('}')
}

// compareKeys orders map keys of ordered kinds by value, so int keys sort
// numerically. ok is false when the kinds have no natural order.
func compareKeys(a, b reflect.Value) (int, bool) {
	if a.Kind() != b.Kind() {
		return 0, false
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), true
	case reflect.String:
		return strings.Compare(a.String(), b.String()), true
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0, true
		case !a.Bool():
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

// structure writes T{Field: v, ...}, unexported fields included.
func (p *printer) structure(v reflect.Value) {
	t := v.Type()
	p.WriteString(t.String())
	p.WriteByte('{')
	n := 0
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		if n > 0 {
			p.WriteString(", ")
		}
		n++
		p.WriteString(f.Name)
		p.WriteString(": ")
		p.value(v.Field(i))
	}
	p.WriteByte('}')
}

func (p *printer) pointer(v reflect.Value) {
	if v.IsNil() {
		p.WriteString("(" + v.Type().String() + ")(nil)")
		return
	}
	switch v.Elem().Kind() {
	case reflect.Struct, reflect.Array, reflect.Slice, reflect.Map:
		p.WriteByte('&')
		p.value(v.Elem())
	default:
		p.opaque(v)
	}
}

func (p *printer) opaque(v reflect.Value) {
	if v.CanInterface() {
		p.WriteString(opaque.Sprintf("%#v", v.Interface()))
		return
	}
	switch v.Kind() {
	case reflect.Pointer:
		p.WriteString("(" + v.Type().String() + ")(")
		p.value(v.Elem())
		p.WriteByte(')')
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			p.typed(v, "nil")
			return
		}
		p.typed(v, "0x"+strconv.FormatUint(uint64(v.Pointer()), 16))
	default:
		p.typed(v, "?")
	}
}

// typed writes (T)(inner), parenthesizing T when it would not parse as a
// conversion, e.g. (chan int)(nil) but []byte("x").
func (p *printer) typed(v reflect.Value, inner string) {
	t := v.Type()
	name := t.String()
	if t.Name() == "" && t.Kind() == reflect.Slice && t.Elem() == byteType {
		// []byte and []uint8 are one type; reflect only knows the latter.
		name = "[]byte"
	}
	if strings.ContainsAny(name, " *") || strings.HasPrefix(name, "chan") || strings.HasPrefix(name, "func") || strings.HasPrefix(name, "<-") {
		name = "(" + name + ")"
	}
	p.WriteString(name + "(" + inner + ")")
}
