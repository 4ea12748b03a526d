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

package resolver

import (
	"reflect"

	"dirpx.dev/repr/apis"
)

// New returns a resolver asking each strategy in turn for an identifier;
// the first strategy that recognizes the value or type decides it, even
// when the identifier it settles on is empty. Nil strategies are skipped.
func New(strategies ...apis.Strategy) apis.Resolver {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{strats: out}
}

// chain never changes after New, so a snapshot may share it across goroutines.
type chain struct {
	strats []apis.Strategy
}

// Identify returns the identifier of v's dynamic type, or "" when no
// strategy recognizes v.
func (r *chain) Identify(v any, cfg apis.Config) string {
	for _, s := range r.strats {
		if id, ok := s.TryIdentify(v, cfg); ok {
			return id
		}
	}
	return ""
}

// IdentifyType is Identify without an instance, so a Namer
// implementation is probed on the type's zero value.
func (r *chain) IdentifyType(t reflect.Type, cfg apis.Config) string {
	for _, s := range r.strats {
		if id, ok := s.TryIdentifyType(t, cfg); ok {
			return id
		}
	}
	return ""
}
