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
	"sync"
	"sync/atomic"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/builder"
	"dirpx.dev/repr/config"
)

// init publishes the default snapshot.
func init() {
	cfg := config.DefaultConfig()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil)
	st.Store(&state{
		cfg: cfg,
		reg: reg,
		res: b.BuildResolver(cfg, reg, nil),
		bld: b,
	})
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("repr: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("repr: builder returned nil resolver")
	// ErrUnidentifiable is raised when a type has no identifier: a nil type,
	// an unnamed type such as an anonymous struct, or a builtin while
	// builtins are disabled. Asking for one is a programming error, so the
	// Identifier functions panic with it rather than return it.
	ErrUnidentifiable = errors.New("repr: type has no identifier")
)

// Identifier returns the identifier of t: its namespace and short name
// joined by the configured separator, e.g. "geom.Point". Pointer types
// resolve to the type they point to. It panics with ErrUnidentifiable if
// t has no identifier.
func Identifier(t reflect.Type) string {
	s := st.Load()
	id := s.res.IdentifyType(t, s.cfg)
	if id == "" {
		panic(fmt.Errorf("%w: %v", ErrUnidentifiable, t))
	}
	return id
}

// IdentifierOf returns the identifier of v's dynamic type. Unlike Identifier
// it lets v choose its own identifier by implementing apis.Namer.
// It panics with ErrUnidentifiable if the type has no identifier.
func IdentifierOf(v any) string {
	s := st.Load()
	id := s.res.Identify(v, s.cfg)
	if id == "" {
		panic(fmt.Errorf("%w: %T", ErrUnidentifiable, v))
	}
	return id
}

// IdentifierFor returns the identifier of T.
func IdentifierFor[T any]() string {
	return Identifier(reflect.TypeFor[T]())
}

// RegisterType gives t a fixed identifier in the global registry.
func RegisterType(t reflect.Type, identifier string) error {
	return st.Load().reg.Register(t, identifier)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds the layers that
// are not pinned.
func SetConfig(cfg apis.Config) {
	update(true, func(next *state, _ *replaced) {
		next.cfg = config.Sanitize(cfg)
	})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it, so later
// configuration changes keep it. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(true, func(next *state, r *replaced) {
		next.reg, next.preg = reg, true
		r.reg = true
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res as the global resolver and pins it.
// A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(false, func(next *state, r *replaced) {
		next.res, next.pres = res, true
		r.res = true
	})
}

// ResolverBuilder returns the builder used to rebuild the registry and resolver.
func ResolverBuilder() apis.Builder {
	return st.Load().bld
}

// SetResolverBuilder replaces the builder and rebuilds the layers that are
// not pinned. A nil b is ignored.
func SetResolverBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(true, func(next *state, _ *replaced) {
		next.bld = b
	})
}

// SetAll replaces every global component in one step and clears both pins
// unless reg or res are given. Nil arguments keep the current builder and
// configuration, and rebuild the registry and resolver. Tests use it to get
// a clean, deterministic snapshot.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	update(true, func(next *state, r *replaced) {
		if cfg != nil {
			next.cfg = config.Sanitize(*cfg)
		}
		if bld != nil {
			next.bld = bld
		}
		next.reg, next.preg = reg, reg != nil
		next.res, next.pres = res, res != nil
		if reg == nil {
			// Fresh registry: nothing carried over from the old one.
			next.reg = next.bld.BuildRegistry(next.cfg, nil)
		}
		r.reg, r.res = true, res != nil
	})
}

// IsRegistryPinned reports whether the global registry survives rebuilds.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the next rebuild replace the global registry.
func UnpinRegistry() {
	update(false, func(next *state, _ *replaced) { next.preg = false })
}

// IsResolverPinned reports whether the global resolver survives rebuilds.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the next rebuild replace the global resolver.
func UnpinResolver() {
	update(false, func(next *state, _ *replaced) { next.pres = false })
}

// buildMu serializes writers so a partially built snapshot is never published.
var buildMu sync.Mutex

// st is the published snapshot. Readers load it without locking.
var st atomic.Pointer[state]

// state is an immutable snapshot; writers publish a new one instead of
// mutating a published value.
type state struct {
	cfg apis.Config
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder
	// preg and pres pin the registry and resolver against rebuilds.
	preg bool
	pres bool
}

// replaced records the layers a mutation installed itself. Registries and
// resolvers are interfaces over arbitrary types, so they are never compared.
type replaced struct {
	reg bool
	res bool
}

// update copies the current snapshot, lets mutate change it and publishes
// the result. With rebuild set, layers that are neither pinned nor replaced
// by mutate are rebuilt through the builder first. A nil resolver is always
// rebuilt.
func update(rebuild bool, mutate func(next *state, r *replaced)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	var r replaced
	mutate(&next, &r)

	if rebuild && !next.preg && !r.reg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	}
	if next.res == nil || (rebuild && !next.pres && !r.res) {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
	}

	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&next)
}
