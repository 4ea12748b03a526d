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

package resolver_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/resolver"
)

// fixed is a strategy that handles every input with the same identifier.
type fixed string

func (f fixed) TryIdentify(any, apis.Config) (string, bool)              { return string(f), true }
func (f fixed) TryIdentifyType(reflect.Type, apis.Config) (string, bool) { return string(f), true }

// pass never handles anything.
type pass struct{}

func (pass) TryIdentify(any, apis.Config) (string, bool)              { return "", false }
func (pass) TryIdentifyType(reflect.Type, apis.Config) (string, bool) { return "", false }

func TestChain_FirstHandledWins(t *testing.T) {
	r := resolver.New(pass{}, nil, fixed("first"), fixed("second"))

	assert.Equal(t, "first", r.Identify(1, apis.Config{}))
	assert.Equal(t, "first", r.IdentifyType(reflect.TypeOf(1), apis.Config{}))
}

func TestChain_NoneHandled(t *testing.T) {
	r := resolver.New(pass{})

	assert.Empty(t, r.Identify(1, apis.Config{}))
	assert.Empty(t, r.IdentifyType(reflect.TypeOf(1), apis.Config{}))
	assert.Empty(t, resolver.New().Identify(1, apis.Config{}))
}

func TestChain_HandledEmptyStops(t *testing.T) {
	// A strategy that handles with "" still ends the chain.
	r := resolver.New(fixed(""), fixed("unreached"))
	assert.Empty(t, r.Identify(1, apis.Config{}))
}

func TestChain_Comparable(t *testing.T) {
	a := resolver.New(fixed("a"))
	b := resolver.New(fixed("a"))
	same := a

	// Snapshots hold resolvers in interfaces; comparing them must not panic.
	assert.NotPanics(t, func() {
		assert.True(t, a == same)
		assert.False(t, a == b)
	})
}
