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
	"reflect"

	"dirpx.dev/repr/apis"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy is the fast path: if v implements apis.Namer, return its
// TypeIdentifier() and stop the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

var namerType = reflect.TypeFor[apis.Namer]()

// TryIdentify checks if v implements apis.Namer and returns its TypeIdentifier().
func (*namerStrategy) TryIdentify(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	n, ok := v.(apis.Namer)
	if !ok {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		// A value receiver would panic on a nil pointer; let the type decide.
		return nameOf(rv.Type())
	}
	return n.TypeIdentifier(), true
}

// TryIdentifyType calls TypeIdentifier on a zero instance of t. Namer is a
// type-level contract, so the zero value answers for every instance.
func (*namerStrategy) TryIdentifyType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return nameOf(t)
}

func nameOf(t reflect.Type) (string, bool) {
	switch {
	case t.Kind() == reflect.Pointer && t.Elem().Implements(namerType):
		return reflect.Zero(t.Elem()).Interface().(apis.Namer).TypeIdentifier(), true
	case t.Kind() == reflect.Pointer && t.Implements(namerType):
		return reflect.New(t.Elem()).Interface().(apis.Namer).TypeIdentifier(), true
	case t.Kind() != reflect.Pointer && t.Implements(namerType):
		return reflect.Zero(t).Interface().(apis.Namer).TypeIdentifier(), true
	}
	return "", false
}
