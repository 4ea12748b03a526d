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

// Package catalog loads representation bindings from configuration.
//
// A catalog maps type identifiers to definitions. In YAML:
//
//	geom.Point:
//	  positional: [X, Y]
//	  keywords: [Units, {label: scale, attr: Factor}]
//	  explicit: [[origin, Origin]]
//
// or the same structure in JSON with comments (JSONC). A keyword entry is
// either a bare attribute name, which labels itself, a two-element
// [label, attr] list, or a {label, attr} object. Keywords are rendered
// before explicit entries, each list in file order.
//
// A Catalog is immutable once loaded and safe for concurrent use.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"dirpx.dev/repr"
)

var (
	// ErrUndefined is returned by Describe for a value whose identifier has
	// no definition.
	ErrUndefined = errors.New("repr(catalog): no definition for identifier")
	// ErrInvalidEntry is returned for an entry that is neither a name,
	// a [label, attr] pair nor a {label, attr} object.
	ErrInvalidEntry = errors.New("repr(catalog): invalid entry")
)

// Entry is one keyword entry. An empty Label means the attribute labels itself.
type Entry struct {
	Label string `yaml:"label" json:"label"`
	Attr  string `yaml:"attr" json:"attr"`
}

// Arg converts e to a repr.Arg.
func (e Entry) Arg() repr.Arg {
	if e.Label == "" {
		return repr.Name(e.Attr)
	}
	return repr.Pair(e.Label, e.Attr)
}

// UnmarshalYAML accepts the three entry forms.
// Name form:   Units
// Pair form:   [scale, Factor]
// Object form: {label: scale, attr: Factor}
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*e = Entry{Attr: value.Value}
		return nil
	case yaml.SequenceNode:
		var pair []string
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: line %d: pair has %d elements", ErrInvalidEntry, value.Line, len(pair))
		}
		*e = Entry{Label: pair[0], Attr: pair[1]}
		return nil
	case yaml.MappingNode:
		type rawEntry Entry
		var raw rawEntry
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*e = Entry(raw)
		return nil
	}
	return fmt.Errorf("%w: line %d: unexpected %s", ErrInvalidEntry, value.Line, value.Tag)
}

// UnmarshalJSON accepts the three entry forms.
func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidEntry)
	}
	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*e = Entry{Attr: name}
		return nil
	case '[':
		var pair []string
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: pair has %d elements", ErrInvalidEntry, len(pair))
		}
		*e = Entry{Label: pair[0], Attr: pair[1]}
		return nil
	case '{':
		type rawEntry Entry
		var raw rawEntry
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*e = Entry(raw)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidEntry, data)
}

// Definition describes the representation of one type.
type Definition struct {
	Positional []string `yaml:"positional" json:"positional"`
	Keywords   []Entry  `yaml:"keywords" json:"keywords"`
	Explicit   []Entry  `yaml:"explicit" json:"explicit"`
}

func (d Definition) clone() Definition {
	return Definition{
		Positional: slices.Clone(d.Positional),
		Keywords:   slices.Clone(d.Keywords),
		Explicit:   slices.Clone(d.Explicit),
	}
}

// Bound builds the repr.Bound for d.
func (d Definition) Bound() (*repr.Bound, error) {
	b := repr.NewBuilder().Positional(d.Positional...)
	for _, e := range d.Keywords {
		b.Keywords(e.Arg())
	}
	for _, e := range d.Explicit {
		b.KeywordArgs(e.Arg())
	}
	return b.Build()
}

// Catalog holds built bindings keyed by type identifier.
type Catalog struct {
	defs  map[string]Definition
	bound map[string]*repr.Bound
}

// New builds every definition. The first invalid one fails the catalog.
func New(defs map[string]Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]Definition, len(defs)),
		bound: make(map[string]*repr.Bound, len(defs)),
	}
	for _, id := range slices.Sorted(maps.Keys(defs)) {
		if id == "" {
			return nil, fmt.Errorf("%w: empty identifier", ErrInvalidEntry)
		}
		b, err := defs[id].Bound()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		c.defs[id] = defs[id].clone()
		c.bound[id] = b
	}
	return c, nil
}

// Parse reads a JSONC catalog.
func Parse(data []byte) (*Catalog, error) {
	stripped := jsonc.ToJSON(data)

	var defs map[string]Definition
	if err := json.Unmarshal(stripped, &defs); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(defs)
}

// ParseYAML reads a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var defs map[string]Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(defs)
}

// ReadFile reads a catalog file: YAML for .yaml and .yml, JSONC otherwise.
func ReadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	parse := Parse
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Lookup returns the binding for identifier.
func (c *Catalog) Lookup(identifier string) (*repr.Bound, bool) {
	b, ok := c.bound[identifier]
	return b, ok
}

// Definition returns a copy of the definition for identifier as loaded.
func (c *Catalog) Definition(identifier string) (Definition, bool) {
	d, ok := c.defs[identifier]
	if !ok {
		return Definition{}, false
	}
	return d.clone(), true
}

// Describe renders v with the binding for its identifier. Like
// repr.IdentifierOf it panics if v's type has no identifier.
func (c *Catalog) Describe(v any) (string, error) {
	id := repr.IdentifierOf(v)
	b, ok := c.bound[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUndefined, id)
	}
	return b.Describe(v)
}

// Identifiers returns the defined identifiers in sorted order.
func (c *Catalog) Identifiers() []string {
	return slices.Sorted(maps.Keys(c.bound))
}
