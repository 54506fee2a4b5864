package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/element"
)

const sampleYAML = `
name: checkout
global:
  bold_text: true
  content_size: large
elements:
  - id: 9b2f7c1e-4a55-4d0c-9a1e-0d6f1b3c2a10
    class: UIButton
    text: Pay now
    frame: {width: 30, height: 30}
    enabled: true
    interactive: true
    accessibility_element: true
    hint: Completes the purchase
    traits: [button]
    font: {name: SF Pro, size: 12}
    colours:
      foreground: "#b7b7b7"
      background: white
      parent: "rgb(240, 240, 240)"
  - class: label
    text: Total
    frame: {width: 200, height: 20}
    colours:
      foreground: black
      background: clear
`

const sampleJSON = `{
  "elements": [
    {"class": "switch", "frame": {"width": 51, "height": 31}, "interactive": true,
     "colours": {"foreground": "#34c759", "background": "#ffffff"}}
  ]
}`

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "checkout", doc.Name)
	require.NotNil(t, doc.Global)
	assert.True(t, doc.Global.BoldText)
	assert.Equal(t, "large", doc.Global.ContentSize)

	require.Len(t, doc.Elements, 2)
	button := doc.Elements[0]
	assert.Equal(t, uuid.MustParse("9b2f7c1e-4a55-4d0c-9a1e-0d6f1b3c2a10"), button.ID)
	assert.Equal(t, element.ClassButton, button.Class)
	assert.Equal(t, element.Frame{Width: 30, Height: 30}, button.Frame)
	assert.Equal(t, "#b7b7b7", button.Colours.Foreground.Hex())
	assert.True(t, button.Colours.Background.Equal(colour.White))
	require.NotNil(t, button.Colours.Parent)
	assert.Equal(t, "#f0f0f0", button.Colours.Parent.Hex())

	label := doc.Elements[1]
	assert.NotEqual(t, uuid.Nil, label.ID, "missing ids are assigned")
	assert.True(t, label.Colours.Background.IsClear())
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	require.Len(t, doc.Elements, 1)
	assert.Equal(t, element.ClassSwitch, doc.Elements[0].Class)
	assert.Nil(t, doc.Global)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{name: "malformed", input: "elements: [", invalid: false},
		{name: "unknown class", input: "elements:\n  - class: spinner\n", invalid: false},
		{name: "bad colour", input: "elements:\n  - class: label\n    colours: {foreground: notacolour}\n", invalid: false},
		{name: "negative frame", input: "elements:\n  - class: label\n    frame: {width: -1, height: 10}\n", invalid: true},
		{name: "blank trait", input: "elements:\n  - class: label\n    traits: [\"\"]\n", invalid: true},
		{
			name:    "duplicate id",
			input:   "elements:\n  - id: 9b2f7c1e-4a55-4d0c-9a1e-0d6f1b3c2a10\n    class: label\n  - id: 9b2f7c1e-4a55-4d0c-9a1e-0d6f1b3c2a10\n    class: label\n",
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			}
		})
	}
}

func TestLoadCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkout.yaml.xz")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(sampleYAML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Elements, 2)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkout.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	data, err := Marshal(doc)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Elements[0].ID, again.Elements[0].ID)
	assert.Equal(t, doc.Elements[0].Colours.Foreground.Hex(), again.Elements[0].Colours.Foreground.Hex())
	assert.Equal(t, doc.Elements[1].ID, again.Elements[1].ID)
}
