package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/contrast"
	"github.com/jmylchreest/a11ykit/internal/library"
)

func TestWriteContrastPassing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeContrast(&buf, colour.Black, colour.White, contrast.Font{Size: 17}, false))

	out := buf.String()
	assert.Contains(t, out, "21.00:1")
	assert.Contains(t, out, "AAA")
	assert.Contains(t, out, "Text (17pt)")
	assert.NotContains(t, out, "Suggested")
}

func TestWriteContrastFailingSuggests(t *testing.T) {
	var buf bytes.Buffer
	grey := colour.MustParse("#b7b7b7")
	require.NoError(t, writeContrast(&buf, grey, colour.White, contrast.Font{Size: 12}, false))

	out := buf.String()
	assert.Contains(t, out, "Fail")
	assert.Contains(t, out, "Suggested foreground colours:")
}

func TestWriteContrastLargeBoldText(t *testing.T) {
	var buf bytes.Buffer
	grey := colour.MustParse("#949494")
	require.NoError(t, writeContrast(&buf, grey, colour.White, contrast.Font{Size: 14, Bold: true}, false))

	out := buf.String()
	assert.Contains(t, out, "Text (14pt, bold)")
	assert.Contains(t, out, "Large Text")
	assert.NotContains(t, out, "Suggested")
}

func TestContrastCommandRejectsBadColour(t *testing.T) {
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"contrast", "--quiet", "not-a-colour", "white"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foreground")
}

func TestWriteApprovedColours(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeApprovedColours(&buf, library.New(), false))
	assert.Contains(t, buf.String(), "No approved colours configured.")

	buf.Reset()
	lib := library.New(library.Swatch{Colour: colour.MustParse("#c8102e"), Title: "Brand Red"})
	require.NoError(t, writeApprovedColours(&buf, lib, false))
	assert.Contains(t, buf.String(), "Brand Red")
	assert.Contains(t, buf.String(), "#c8102e")
}

func TestWriteColourChecks(t *testing.T) {
	lib := library.New(library.Swatch{Colour: colour.MustParse("#c8102e"), Title: "Brand Red"})
	near := colour.FromRGBA8(201, 16, 46, 255)

	tests := []struct {
		name      string
		tolerance float64
		approved  bool
	}{
		{"exact match required", 0, false},
		{"within tolerance", 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeColourChecks(&buf, lib, []colour.Colour{near}, tt.tolerance, false))
			if tt.approved {
				assert.Contains(t, buf.String(), "Brand Red (#c8102e)")
			} else {
				assert.NotContains(t, buf.String(), "Brand Red")
			}
		})
	}

	assert.Len(t, lib.Suggested(), 1)
}
