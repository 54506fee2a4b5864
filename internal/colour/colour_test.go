package colour

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Colour
	}{
		{
			name:  "six digit hex",
			input: "#ff0000",
			want:  Colour{R: 1, G: 0, B: 0, A: 1},
		},
		{
			name:  "three digit hex",
			input: "#0f0",
			want:  Colour{R: 0, G: 1, B: 0, A: 1},
		},
		{
			name:  "upper case with whitespace",
			input: "  #0000FF ",
			want:  Colour{R: 0, G: 0, B: 1, A: 1},
		},
		{
			name:  "hex with alpha",
			input: "#ffffff00",
			want:  Colour{R: 1, G: 1, B: 1, A: 0},
		},
		{
			name:  "rgb function",
			input: "rgb(255, 255, 255)",
			want:  White,
		},
		{
			name:  "rgba function",
			input: "rgba(0, 0, 0, 0.5)",
			want:  Colour{R: 0, G: 0, B: 0, A: 0.5},
		},
		{
			name:  "named colour",
			input: "black",
			want:  Black,
		},
		{
			name:  "clear",
			input: "clear",
			want:  Clear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.input)
			if err != nil {
				t.Fatalf("ParseColour(%q) error = %v", tt.input, err)
			}
			if !got.Within(tt.want, 1e-9) {
				t.Errorf("ParseColour(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColourInvalid(t *testing.T) {
	inputs := []string{"", "#12", "#12345", "rgb(1,2)", "rgba(1,2,3)", "not-a-colour", "#gggggg"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColour(input)
			if !errors.Is(err, ErrInvalidColour) {
				t.Errorf("ParseColour(%q) error = %v, want ErrInvalidColour", input, err)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 85 {
				original := FromRGBA8(uint8(r), uint8(g), uint8(b), 255)
				parsed, err := ParseColour(original.Hex())
				if err != nil {
					t.Fatalf("ParseColour(%s) error = %v", original.Hex(), err)
				}
				if !parsed.Within(original, 1.0/255.0) {
					t.Errorf("round trip %s gave %s", original.Hex(), parsed.Hex())
				}
				if parsed.Hex() != original.Hex() {
					t.Errorf("Hex() = %s, want %s", parsed.Hex(), original.Hex())
				}
			}
		}
	}
}

func TestColourHex(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   string
	}{
		{name: "white", colour: White, want: "#ffffff"},
		{name: "black", colour: Black, want: "#000000"},
		{name: "grey", colour: FromRGBA8(128, 128, 128, 255), want: "#808080"},
		{name: "translucent red", colour: Colour{R: 1, A: 0.5}, want: "#ff000080"},
		{name: "clear", colour: Clear, want: "#00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColourRGBString(t *testing.T) {
	if got := FromRGBA8(255, 0, 0, 255).RGBString(); got != "rgb(255, 0, 0)" {
		t.Errorf("RGBString() = %s, want rgb(255, 0, 0)", got)
	}
	if got := (Colour{R: 0, G: 0, B: 1, A: 0.5}).RGBString(); got != "rgba(0, 0, 255, 0.50)" {
		t.Errorf("RGBString() = %s, want rgba(0, 0, 255, 0.50)", got)
	}
}

func TestColourWithin(t *testing.T) {
	a := FromRGBA8(100, 100, 100, 255)
	b := FromRGBA8(102, 100, 100, 255)

	if a.Within(b, 0) {
		t.Error("Within(0) should require exact equality")
	}
	if !a.Within(b, 3.0/255.0) {
		t.Error("Within(3/255) should accept a 2/255 difference")
	}
}

func TestColourUnmarshalText(t *testing.T) {
	var c Colour
	if err := c.UnmarshalText([]byte("navy")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if c.Hex() != "#000080" {
		t.Errorf("UnmarshalText() = %s, want #000080", c.Hex())
	}

	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "#000080" {
		t.Errorf("MarshalText() = %s, want #000080", text)
	}
}

func TestColourRGBA(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x, want all 0xffff", r, g, b, a)
	}

	back := FromColor(Colour{R: 1, A: 0.5})
	if math.Abs(back.A-0.5) > 1.0/255.0 || math.Abs(back.R-1) > 1.0/255.0 {
		t.Errorf("FromColor() = %+v, want translucent red", back)
	}
}

func TestPreview(t *testing.T) {
	got := Preview(FromRGBA8(255, 0, 0, 255), 4)
	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") {
		t.Errorf("Preview() = %q, want red background escape", got)
	}
	if !strings.Contains(got, "    ") || !strings.HasSuffix(got, ansiReset) {
		t.Errorf("Preview() = %q, want four spaces and reset", got)
	}

	pair := PreviewPair(Black, White, "Aa", 6)
	if !strings.Contains(pair, "\033[38;2;0;0;0m") || !strings.Contains(pair, "  Aa  ") {
		t.Errorf("PreviewPair() = %q", pair)
	}
}

func TestPreviewPairMultiByteText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"Größe", 3, "Grö"},
		{"→", 3, " → "},
		{"Größe", 5, "Größe"},
	}

	for _, tt := range tests {
		got := PreviewPair(Black, White, tt.text, tt.width)
		if !utf8.ValidString(got) {
			t.Errorf("PreviewPair(%q, %d) produced invalid UTF-8: %q", tt.text, tt.width, got)
		}
		if !strings.Contains(got, "m"+tt.want+ansiReset) {
			t.Errorf("PreviewPair(%q, %d) = %q, want text %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestSupportsANSIColoursNonTerminal(t *testing.T) {
	if SupportsANSIColours(&bytes.Buffer{}) {
		t.Error("SupportsANSIColours() should be false for a buffer")
	}
}
