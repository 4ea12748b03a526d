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

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/repr"
	"dirpx.dev/repr/catalog"
)

type Point struct {
	X, Y   int
	Units  string
	Factor float64
	Origin bool
}

type Other struct{ V int }

const pointYAML = `
catalog_test.Point:
  positional: [X, Y]
  keywords:
    - Units
    - [scale, Factor]
  explicit:
    - {label: origin, attr: Origin}
catalog_test.Other:
  keywords: [V]
`

const pointJSONC = `{
	// Same bindings as the YAML form.
	"catalog_test.Point": {
		"positional": ["X", "Y"],
		"keywords": ["Units", ["scale", "Factor"]],
		"explicit": [{"label": "origin", "attr": "Origin"}], /* trailing comma next */
	},
	"catalog_test.Other": {"keywords": ["V"]},
}`

func testPoint() Point {
	return Point{X: 1, Y: 2, Units: "m", Factor: 0.5, Origin: true}
}

func TestParse_Formats(t *testing.T) {
	want := catalog.Definition{
		Positional: []string{"X", "Y"},
		Keywords:   []catalog.Entry{{Attr: "Units"}, {Label: "scale", Attr: "Factor"}},
		Explicit:   []catalog.Entry{{Label: "origin", Attr: "Origin"}},
	}

	fromYAML, err := catalog.ParseYAML([]byte(pointYAML))
	require.NoError(t, err)
	fromJSONC, err := catalog.Parse([]byte(pointJSONC))
	require.NoError(t, err)

	for _, c := range []*catalog.Catalog{fromYAML, fromJSONC} {
		def, ok := c.Definition("catalog_test.Point")
		require.True(t, ok)
		assert.Equal(t, want, def, spew.Sdump(def))
		assert.Equal(t, []string{"catalog_test.Other", "catalog_test.Point"}, c.Identifiers())

		got, err := c.Describe(testPoint())
		require.NoError(t, err)
		assert.Equal(t, `catalog_test.Point(1, 2, Units="m", scale=0.5, origin=true)`, got)

		got, err = c.Describe(&Other{V: 9})
		require.NoError(t, err)
		assert.Equal(t, "catalog_test.Other(V=9)", got)
	}
}

func TestDefinition_IsCopy(t *testing.T) {
	c, err := catalog.ParseYAML([]byte(pointYAML))
	require.NoError(t, err)

	def, ok := c.Definition("catalog_test.Point")
	require.True(t, ok)
	def.Positional[0] = "Y"
	def.Keywords[0] = catalog.Entry{Attr: "Nope"}
	def.Explicit[0].Label = "changed"

	again, _ := c.Definition("catalog_test.Point")
	assert.Equal(t, []string{"X", "Y"}, again.Positional)
	assert.Equal(t, catalog.Entry{Attr: "Units"}, again.Keywords[0])
	assert.Equal(t, "origin", again.Explicit[0].Label)

	_, ok = c.Definition("geom.Point")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	c, err := catalog.ParseYAML([]byte(pointYAML))
	require.NoError(t, err)

	b, ok := c.Lookup("catalog_test.Point")
	require.True(t, ok)
	pos, kws := b.Args()
	assert.Len(t, pos, 2)
	assert.Len(t, kws, 3)

	_, ok = c.Lookup("geom.Point")
	assert.False(t, ok)
}

func TestDescribe_Undefined(t *testing.T) {
	c, err := catalog.ParseYAML([]byte("catalog_test.Other: {}"))
	require.NoError(t, err)

	_, err = c.Describe(testPoint())
	assert.ErrorIs(t, err, catalog.ErrUndefined)

	got, err := c.Describe(Other{})
	require.NoError(t, err)
	assert.Equal(t, "catalog_test.Other()", got)
}

func TestDescribe_MissingAttribute(t *testing.T) {
	c, err := catalog.Parse([]byte(`{"catalog_test.Other": {"positional": ["W"]}}`))
	require.NoError(t, err)

	_, err = c.Describe(Other{})
	assert.ErrorIs(t, err, repr.ErrMissingAttribute)
}

func TestParse_InvalidEntries(t *testing.T) {
	yamlTests := []struct {
		name string
		doc  string
		want error
	}{
		{"three element pair", "a.T: {keywords: [[a, b, c]]}", catalog.ErrInvalidEntry},
		{"free-form label", "a.T: {keywords: [[not valid, b]]}", nil},
		{"pair label missing", "a.T: {explicit: [{attr: X}]}", nil},
		{"empty attr", "a.T: {keywords: [{label: x}]}", repr.ErrInvalidArgs},
	}
	for _, tt := range yamlTests {
		t.Run("yaml/"+tt.name, func(t *testing.T) {
			_, err := catalog.ParseYAML([]byte(tt.doc))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	jsonTests := []struct {
		name string
		doc  string
		want error
	}{
		{"single element pair", `{"a.T": {"keywords": [["a"]]}}`, catalog.ErrInvalidEntry},
		{"number", `{"a.T": {"keywords": [3]}}`, catalog.ErrInvalidEntry},
		{"empty identifier", `{"": {}}`, catalog.ErrInvalidEntry},
	}
	for _, tt := range jsonTests {
		t.Run("json/"+tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := catalog.Parse([]byte(`{"a.T": `))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "repr.yaml")
	jsoncPath := filepath.Join(dir, "repr.jsonc")
	require.NoError(t, os.WriteFile(yamlPath, []byte(pointYAML), 0o644))
	require.NoError(t, os.WriteFile(jsoncPath, []byte(pointJSONC), 0o644))

	for _, path := range []string{yamlPath, jsoncPath} {
		c, err := catalog.ReadFile(path)
		require.NoError(t, err, path)
		got, err := c.Describe(testPoint())
		require.NoError(t, err)
		assert.Equal(t, `catalog_test.Point(1, 2, Units="m", scale=0.5, origin=true)`, got)
	}

	_, err := catalog.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("a.T: {keywords: [[a, b, c]]}"), 0o644))
	_, err = catalog.ReadFile(bad)
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
	assert.Contains(t, err.Error(), bad)
}
