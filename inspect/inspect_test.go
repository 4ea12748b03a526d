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

package inspect_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/repr/inspect"
)

type Point struct {
	X, Y int
}

type Tagged struct {
	Name  string
	inner []byte
	_     int
	Any   any
}

type Color string

// Blob is a named byte slice; it keeps its own name.
type Blob []byte

type Hooked struct{ id int }

func (h Hooked) GoString() string { return "hooked#" + strconv.Itoa(h.id) }

type PtrHooked struct{}

func (*PtrHooked) GoString() string { return "ptr-hooked" }

func TestString_Scalars(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want string
	}{
		{"nil", nil, "nil"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 4, "4"},
		{"negative", int8(-1), "-1"},
		{"uint", uint64(math.MaxUint64), "18446744073709551615"},
		{"uintptr", uintptr(255), "0xff"},
		{"float", 45.3, "45.3"},
		{"float shortest", 1.0000000000000001, "1"},
		{"float32", float32(0.1), "0.1"},
		{"complex", complex(1, 2), "(1+2i)"},
		{"string", "string", `"string"`},
		{"named string", Color("red"), `"red"`},
		{"escapes", "mass\n\t\"q\"", `"mass\n\t\"q\""`},
		{"bytes", []byte("string"), `[]byte("string")`},
		{"uint8 slice", []uint8{'h', 'i'}, `[]byte("hi")`},
		{"nil bytes", []byte(nil), "[]byte(nil)"},
		{"named bytes", Blob("x\n"), `inspect_test.Blob("x\n")`},
		{"byte array", [2]byte{1, 2}, "[2]uint8{1, 2}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inspect.String(tc.val))
		})
	}
}

func TestString_QuotedRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "quote\"d", `back\slash`, "new\nline", "uni✓", "\x00\xff"} {
		got, err := strconv.Unquote(inspect.String(s))
		require.NoError(t, err, s)
		assert.Equal(t, s, got)
		assert.NotEqual(t, s, inspect.String(s), "rendered form must be distinguishable")
	}
}

func TestString_Composites(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want string
	}{
		{"slice", []int{1, 2, 3}, "[]int{1, 2, 3}"},
		{"empty slice", []string{}, "[]string{}"},
		{"nil slice", []int(nil), "[]int(nil)"},
		{"array", [2]bool{true, false}, "[2]bool{true, false}"},
		{"map sorted numerically", map[int]string{10: "a", 9: "b"}, `map[int]string{9: "b", 10: "a"}`},
		{"map strings", map[string]int{"b": 2, "a": 1}, `map[string]int{"a": 1, "b": 2}`},
		{"nil map", map[string]int(nil), "map[string]int(nil)"},
		{"struct", Point{X: 1, Y: 2}, "inspect_test.Point{X: 1, Y: 2}"},
		{"pointer to struct", &Point{X: 1}, "&inspect_test.Point{X: 1, Y: 0}"},
		{"nil pointer", (*Point)(nil), "(*inspect_test.Point)(nil)"},
		{"nested", []any{"a", 1, nil, []int{2}}, `[]interface {}{"a", 1, nil, []int{2}}`},
		{
			"unexported fields",
			Tagged{Name: "n", inner: []byte("x"), Any: Point{}},
			`inspect_test.Tagged{Name: "n", inner: []byte("x"), Any: inspect_test.Point{X: 0, Y: 0}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inspect.String(tc.val))
		})
	}
}

func TestString_GoStringerHook(t *testing.T) {
	assert.Equal(t, "hooked#3", inspect.String(Hooked{id: 3}))
	assert.Equal(t, "[]inspect_test.Hooked{hooked#1, hooked#2}", inspect.String([]Hooked{{1}, {2}}))
	assert.Equal(t, `map[string]inspect_test.Hooked{"k": hooked#4}`, inspect.String(map[string]Hooked{"k": {4}}))

	assert.Equal(t, "ptr-hooked", inspect.String(&PtrHooked{}))
	assert.Equal(t, "inspect_test.PtrHooked{}", inspect.String(PtrHooked{}), "value lacks the pointer method")
	assert.Equal(t, "(*inspect_test.PtrHooked)(nil)", inspect.String((*PtrHooked)(nil)))

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, ts.GoString(), inspect.String(ts))
}

func TestString_Opaque(t *testing.T) {
	n := 5
	got := inspect.String(&n)
	assert.Contains(t, got, "*int")
	assert.Contains(t, got, "5")

	assert.Contains(t, inspect.String(make(chan int)), "chan int")
	assert.Contains(t, inspect.String(func() {}), "func()")
}
