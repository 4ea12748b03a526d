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
	"log/slog"
	"reflect"
	"slices"
)

// ErrInvalidArgs is returned for a malformed argument list: an empty
// attribute name, a pair in positional position, a positional name after
// the keyword collection, or an argument of an unsupported type.
var ErrInvalidArgs = errors.New("repr: invalid argument list")

// Builder assembles a Bound step by step. Positional names and keyword
// entries are kept apart, so there is never a question of which arguments
// are which:
//
//	var pointRepr = repr.NewBuilder().
//		Positional("Name", "Value").
//		Keywords(repr.Name("Units"), repr.Pair("scale", "Factor")).
//		Keyword("origin", "Origin").
//		MustBuild()
//
// A Builder is not safe for concurrent use; the Bound it builds is.
type Builder struct {
	positional []Arg
	sugar      []Arg
	explicit   []Arg
	err        error
}

// NewBuilder returns an empty Builder. Built as is, it renders "T()".
func NewBuilder() *Builder {
	return &Builder{}
}

// Positional appends attributes rendered as positional values.
func (b *Builder) Positional(names ...string) *Builder {
	for _, n := range names {
		b.positional = append(b.positional, Name(n))
	}
	return b
}

// PositionalArgs appends positional Args, typically Func accessors.
// Pairs are rejected: a positional value has no label.
func (b *Builder) PositionalArgs(args ...Arg) *Builder {
	for _, a := range args {
		if a.IsPair() {
			b.fail(fmt.Errorf("%w: pair %v in positional arguments", ErrInvalidArgs, a))
			continue
		}
		b.positional = append(b.positional, a)
	}
	return b
}

// Keywords appends to the keyword collection. A bare Name(n) is rendered as
// n=<n>; a Pair(label, attr) as label=<attr>. Collection entries always come
// before keywords added with Keyword and KeywordArgs.
func (b *Builder) Keywords(entries ...Arg) *Builder {
	for _, e := range entries {
		b.sugar = append(b.sugar, e.keyword())
	}
	return b
}

// Keyword appends an explicit keyword label=<attr>. Explicit keywords follow
// the whole keyword collection, in the order they were added.
func (b *Builder) Keyword(label, attr string) *Builder {
	return b.KeywordArgs(Pair(label, attr))
}

// KeywordArgs appends explicit keywords given as Args.
func (b *Builder) KeywordArgs(args ...Arg) *Builder {
	for _, a := range args {
		b.explicit = append(b.explicit, a.keyword())
	}
	return b
}

// Build validates the entries and returns the immutable Bound. Every
// attribute name must be non-empty; labels are taken as given.
func (b *Builder) Build() (*Bound, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, a := range b.positional {
		if a.attr == "" {
			return nil, fmt.Errorf("%w: empty positional attribute name", ErrInvalidArgs)
		}
	}
	keywords := slices.Concat(b.sugar, b.explicit)
	for _, a := range keywords {
		if a.attr == "" {
			return nil, fmt.Errorf("%w: empty attribute name for keyword %q", ErrInvalidArgs, a.label)
		}
	}
	return &Bound{positional: slices.Clone(b.positional), keywords: keywords}, nil
}

// MustBuild is like Build but panics on error. It suits package-level
// variables, where a bad argument list is a programming error.
func (b *Builder) MustBuild() *Bound {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build builds a Bound from a compact argument list:
//
//	repr.Build("Name", "Value", []string{"Units"}, repr.Pair("scale", "Factor"))
//
// Arguments are read in order:
//   - a string or a bare Arg (Name, Func) is a positional attribute;
//   - a collection ([]string, []Arg, [][2]string, or []any holding any of
//     string, Arg and [2]string) is the keyword collection, where a name n
//     stands for the pair (n, n). At most one collection is allowed, and no
//     positional attribute may follow it;
//   - a pair Arg (Pair, or Arg.As) is an explicit keyword. Explicit keywords
//     are rendered after the whole collection, in argument order.
//
// Build("a", "b", []string{"c"}) and Build("a", "b", Pair("c", "c")) are
// equivalent.
func Build(args ...any) (*Bound, error) {
	b := NewBuilder()
	collected := false
	for i, arg := range args {
		switch x := arg.(type) {
		case string:
			if collected {
				return nil, fmt.Errorf("%w: positional %q after the keyword collection", ErrInvalidArgs, x)
			}
			b.Positional(x)
		case Arg:
			if x.IsPair() {
				b.KeywordArgs(x)
				continue
			}
			if collected {
				return nil, fmt.Errorf("%w: positional %v after the keyword collection", ErrInvalidArgs, x)
			}
			b.PositionalArgs(x)
		default:
			entries, err := collection(arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			if collected {
				return nil, fmt.Errorf("%w: argument %d is a second keyword collection", ErrInvalidArgs, i)
			}
			collected = true
			b.Keywords(entries...)
		}
	}
	return b.Build()
}

// MustBuild is like Build but panics on error.
func MustBuild(args ...any) *Bound {
	r, err := Build(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// collection converts a keyword collection to Args.
func collection(v any) ([]Arg, error) {
	switch c := v.(type) {
	case []Arg:
		return c, nil
	case []string:
		out := make([]Arg, len(c))
		for i, n := range c {
			out[i] = Name(n)
		}
		return out, nil
	case [][2]string:
		out := make([]Arg, len(c))
		for i, p := range c {
			out[i] = Pair(p[0], p[1])
		}
		return out, nil
	case []any:
		out := make([]Arg, len(c))
		for i, e := range c {
			switch x := e.(type) {
			case string:
				out[i] = Name(x)
			case Arg:
				out[i] = x
			case [2]string:
				out[i] = Pair(x[0], x[1])
			default:
				return nil, fmt.Errorf("%w: collection entry %d has unsupported type %T", ErrInvalidArgs, i, e)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidArgs, v)
}

// Bound renders instances from a fixed list of positional and keyword
// entries. It holds no per-instance state and is safe for concurrent use.
//
// Install it as a type's debug string hook by delegation:
//
//	var pointRepr = repr.MustBuild("X", "Y")
//
//	func (p Point) GoString() string { return pointRepr.MustDescribe(p) }
//
// fmt then uses it for %#v, and so does package inspect when a Point is
// nested inside another rendered value.
type Bound struct {
	positional []Arg
	keywords   []Arg
}

// Args returns copies of the positional and keyword entries, in render
// order. Every keyword entry carries its label.
func (b *Bound) Args() (positional, keywords []Arg) {
	return slices.Clone(b.positional), slices.Clone(b.keywords)
}

// Describe reads the attributes off instance and renders it. A missing
// attribute fails with an *AttributeError; no value is defaulted.
func (b *Bound) Describe(instance any) (string, error) {
	args := make([]reflect.Value, len(b.positional))
	for i, a := range b.positional {
		v, err := a.read(instance)
		if err != nil {
			return "", err
		}
		args[i] = v
	}
	kwargs := make([]labeled, len(b.keywords))
	for i, a := range b.keywords {
		v, err := a.read(instance)
		if err != nil {
			return "", err
		}
		kwargs[i] = labeled{label: a.label, value: v}
	}
	return render(IdentifierOf(instance), args, kwargs), nil
}

// MustDescribe is like Describe but panics on error. Inside a GoString
// method the panic reaches fmt, which prints it in place of the value.
func (b *Bound) MustDescribe(instance any) string {
	s, err := b.Describe(instance)
	if err != nil {
		panic(err)
	}
	return s
}

// Bind returns a Hook rendering instance with b.
func (b *Bound) Bind(instance any) Hook {
	return func() string { return b.MustDescribe(instance) }
}

// Hook is a representation bound to one instance. It is evaluated each time
// it is formatted, so it can be handed to loggers cheaply:
//
//	slog.Debug("moved", "point", pointRepr.Bind(p))
type Hook func() string

// GoString implements fmt.GoStringer.
func (h Hook) GoString() string { return h() }

// String implements fmt.Stringer.
func (h Hook) String() string { return h() }

// LogValue implements slog.LogValuer.
func (h Hook) LogValue() slog.Value { return slog.StringValue(h()) }
