// Package colour provides the colour model and WCAG colour maths used by the auditor.
package colour

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is a colour with normalised RGBA channels in the range [0,1].
type Colour struct {
	R float64 `json:"-" yaml:"-"`
	G float64 `json:"-" yaml:"-"`
	B float64 `json:"-" yaml:"-"`
	A float64 `json:"-" yaml:"-"`
}

// Common colours.
var (
	Black = Colour{R: 0, G: 0, B: 0, A: 1}
	White = Colour{R: 1, G: 1, B: 1, A: 1}
	Clear = Colour{}
)

// New creates a colour from normalised channels, clamping each to [0,1].
func New(r, g, b, a float64) Colour {
	return Colour{R: clampUnit(r), G: clampUnit(g), B: clampUnit(b), A: clampUnit(a)}
}

// FromRGBA8 creates a colour from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Colour {
	return Colour{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// FromColor converts any color.Color. Alpha premultiplication is undone.
func FromColor(c color.Color) Colour {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA8(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// RGBA implements color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.RGBA8()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// RGBA8 returns the channels rounded to 8 bits.
func (c Colour) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the colour is not fully opaque.
func (c Colour) Hex() string {
	hex := c.toColorful().Clamped().Hex()
	if c.A < 1 {
		hex += fmt.Sprintf("%02x", to8(c.A))
	}
	return hex
}

// RGBString returns the colour as "rgb(r, g, b)" or "rgba(r, g, b, a)".
func (c Colour) RGBString() string {
	r, g, b, _ := c.RGBA8()
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, c.A)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// String returns the hex representation.
func (c Colour) String() string {
	return c.Hex()
}

// Luminance returns the WCAG relative luminance of the colour.
func (c Colour) Luminance() float64 {
	return RelativeLuminance(c)
}

// IsClear reports whether the colour is fully transparent.
func (c Colour) IsClear() bool {
	return c.A == 0
}

// Equal reports exact channel equality.
func (c Colour) Equal(other Colour) bool {
	return c == other
}

// Within reports whether every channel differs by no more than tolerance.
// A tolerance of zero is exact equality.
func (c Colour) Within(other Colour, tolerance float64) bool {
	if tolerance <= 0 {
		return c.Equal(other)
	}
	return math.Abs(c.R-other.R) <= tolerance &&
		math.Abs(c.G-other.G) <= tolerance &&
		math.Abs(c.B-other.B) <= tolerance &&
		math.Abs(c.A-other.A) <= tolerance
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColour.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Colour) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cc colorful.Color, alpha float64) Colour {
	cc = cc.Clamped()
	return Colour{R: cc.R, G: cc.G, B: cc.B, A: alpha}
}

func to8(v float64) uint8 {
	return uint8(clampUnit(v)*255.0 + 0.5)
}

func clampUnit(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
