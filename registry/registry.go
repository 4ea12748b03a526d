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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
	uref "dirpx.dev/repr/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("repr(registry): nil reflect.Type provided")
	// ErrEmptyIdentifier is returned when an empty or blank identifier is provided.
	ErrEmptyIdentifier = errors.New("repr(registry): empty identifier provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type under a different identifier.
	ErrConflictingRegistration = errors.New("repr(registry): conflicting type registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here; the other knobs shape derived identifiers,
// not registered ones.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg, m: make(map[reflect.Type]string)}
}

// registry is a Registry backed by a map guarded by a RWMutex.
// Lookups vastly outnumber registrations, which happen at init time.
type registry struct {
	cfg apis.Config
	mu  sync.RWMutex
	m   map[reflect.Type]string
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Register associates the named type behind t with identifier.
// It is idempotent for the same (type, identifier) pair.
func (r *registry) Register(t reflect.Type, identifier string) error {
	if t == nil {
		return ErrNilType
	}
	if strings.TrimSpace(identifier) == "" {
		return ErrEmptyIdentifier
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return fmt.Errorf("repr(registry): register %v: %w", t, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.m[b]; ok {
		if old == identifier {
			return nil
		}
		return fmt.Errorf("%w: %v is %q, not %q", ErrConflictingRegistration, b, old, identifier)
	}
	r.m[b] = identifier
	return nil
}

// Lookup returns the identifier registered for the named type behind t.
func (r *registry) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.m[b]
	return id, ok
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]apis.Entry, 0, len(r.m))
	for t, id := range r.m {
		entries = append(entries, apis.Entry{Type: t, Identifier: id})
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.m)
}
