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

package strategy_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/repr/registry"
	"dirpx.dev/repr/strategy"
)

func TestRegistryStrategy_WithRealRegistry(t *testing.T) {
	conf := cfg()
	reg := registry.New(conf)
	require.NoError(t, reg.Register(reflect.TypeOf(A{}), "Pkg.A"))

	s := strategy.NewRegistryStrategy(reg)

	for _, v := range []any{A{}, &A{}} {
		got, ok := s.TryIdentify(v, conf)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, "Pkg.A", got)
	}

	got, ok := s.TryIdentifyType(reflect.TypeOf((**A)(nil)), conf)
	assert.True(t, ok)
	assert.Equal(t, "Pkg.A", got)

	// Unknown type -> miss.
	_, ok = s.TryIdentify(G[int]{}, conf)
	assert.False(t, ok)
	_, ok = s.TryIdentifyType(reflect.TypeOf([]A{}), conf)
	assert.False(t, ok, "slices are not normalized to their element")
}

func TestRegistryStrategy_NilInputs(t *testing.T) {
	conf := cfg()

	s := strategy.NewRegistryStrategy(nil)
	_, ok := s.TryIdentify(A{}, conf)
	assert.False(t, ok)

	s = strategy.NewRegistryStrategy(registry.New(conf))
	_, ok = s.TryIdentify(nil, conf)
	assert.False(t, ok)
	_, ok = s.TryIdentifyType(nil, conf)
	assert.False(t, ok)
}
