package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
classes:
  p5: {}
  p5.Vector: {}
  p5.Color: {}
classitems:
  - class: p5.Vector
    name: add
    itemtype: method
    description: Adds to a vector.
    line: 42
    chainable: 1
    params:
      - name: x
        type: Number|p5.Vector
      - name: y
        type: Number
        optional: true
  - class: p5
    name: background
    description: Sets the background.
    overloads:
      - params:
          - name: gray
            type: Number
      - params:
          - name: color
            type: p5.Color
  - class: p5
    description: orphaned block
`

const sampleJSON = `{
	"classes": {
		"p5.Vector": {"name": "p5.Vector"},
		"p5": {"name": "p5"},
		"Something.Else": {}
	},
	"classitems": [
		{"class": "p5.Vector", "name": "add", "description": "Adds.", "static": 1, "line": "7"},
		{"class": "p5.Vector", "name": "add", "description": "Adds again."}
	]
}`

func TestParseYAML(t *testing.T) {
	reg, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"p5", "p5.Vector", "p5.Color"}, reg.ClassNames())
	assert.True(t, reg.HasClass("p5.Color"))
	assert.Len(t, reg.ClassItems(), 3)

	add, ok := reg.Lookup("p5.Vector", "add")
	require.True(t, ok)
	assert.Equal(t, "method", add.ItemType)
	assert.Equal(t, 42, add.Line)
	require.Len(t, add.Params, 2)
	assert.True(t, add.Params[1].Optional)
	assert.Equal(t, 1, add.Extra["chainable"], "unknown fields are kept")

	bg, ok := reg.Lookup("p5", "background")
	require.True(t, ok)
	sigs := bg.Signatures()
	require.Len(t, sigs, 2)
	assert.Equal(t, "p5.Color", sigs[1][0].Type)

	assert.Len(t, reg.Members("p5"), 1, "unnamed records are not members")
}

func TestParseJSON_KeepsClassOrder(t *testing.T) {
	reg, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"p5.Vector", "p5", "Something.Else"}, reg.ClassNames())

	add, ok := reg.Lookup("p5.Vector", "add")
	require.True(t, ok)
	assert.Equal(t, "Adds again.", add.Description, "last record wins")

	first := reg.ClassItems()[0]
	assert.True(t, first.Static)
	assert.Equal(t, 7, first.Line)
}

func TestParse_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("- just\n- a list\n"))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = ParseJSON([]byte(`{"classes": []}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = ParseYAML([]byte("classitems:\n  - class: [unclosed\n"))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "data.json")
	yamlPath := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Len(t, fromJSON.ClassItems(), 2)

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, fromYAML.ClassItems(), 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSignatures_NoneDocumented(t *testing.T) {
	assert.Nil(t, ClassItem{Name: "noop"}.Signatures())
	assert.Len(t, ClassItem{Name: "zero", Params: []Param{}}.Signatures(), 1)
}

func TestReference(t *testing.T) {
	item := ClassItem{Class: "p5.Vector", Name: "add", Description: "Adds to a vector."}

	ref := Reference{}
	assert.Equal(t, "http://p5js.org/reference/#/p5.Vector/add", ref.URL(item))
	assert.Equal(t,
		"add()\n\nAdds to a vector.\n\nFor more information, see: http://p5js.org/reference/#/p5.Vector/add",
		ref.Help(item))

	custom := Reference{BaseURL: "https://example.test/ref"}
	assert.Equal(t, "https://example.test/ref/p5.Vector/add", custom.URL(item))
}

func TestLint(t *testing.T) {
	reg, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)

	diags := Lint(reg, "p5")
	require.Len(t, diags, 2)
	assert.Equal(t, DiagnosticUnrecognized, diags[0].Kind)
	assert.Equal(t, "Something.Else", diags[0].Class)
	assert.Equal(t, DiagnosticDuplicate, diags[1].Kind)
	assert.Equal(t, "add", diags[1].Member)

	yamlReg, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)
	diags = Lint(yamlReg, "p5")
	require.Len(t, diags, 1)
	assert.Equal(t, DiagnosticUnnamed, diags[0].Kind)
}
