// Package contrast maps WCAG contrast ratios to compliance ratings.
package contrast

import (
	"fmt"

	"github.com/jmylchreest/a11ykit/internal/colour"
)

// WCAG thresholds.
const (
	TextAAA       = 7.0
	TextAA        = 4.5
	LargeTextAAA  = 4.5
	LargeTextAA   = 3.0
	NonTextAA     = 3.0
	LargeTextSize = 18.0
	LargeBoldSize = 14.0
)

// Rating is a WCAG compliance tier.
type Rating int

const (
	// NotApplicable is used when the colours cannot be measured (clear or identical).
	NotApplicable Rating = iota
	// Fail means the ratio is below the AA threshold.
	Fail
	// AA meets the minimum contrast requirement.
	AA
	// AAA meets the enhanced contrast requirement.
	AAA
)

// String returns the W3C name of the rating.
func (r Rating) String() string {
	switch r {
	case Fail:
		return "Fail"
	case AA:
		return "AA"
	case AAA:
		return "AAA"
	default:
		return "N/A"
	}
}

// Passes reports whether the rating is AA or better.
func (r Rating) Passes() bool {
	return r == AA || r == AAA
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// IsLargeText reports whether text of the given point size counts as large:
// 18pt and above, or 14pt and above when bold.
func IsLargeText(size float64, bold bool) bool {
	return size >= LargeTextSize || (bold && size >= LargeBoldSize)
}

// RateText rates the contrast of text.
func RateText(ratio, size float64, bold bool) Rating {
	aaa, aa := TextAAA, TextAA
	if IsLargeText(size, bold) {
		aaa, aa = LargeTextAAA, LargeTextAA
	}

	switch {
	case ratio >= aaa:
		return AAA
	case ratio >= aa:
		return AA
	default:
		return Fail
	}
}

// RateNonText rates the contrast of non-text content such as icons and control boundaries.
func RateNonText(ratio float64) Rating {
	if ratio >= NonTextAA {
		return AA
	}
	return Fail
}

// TextRating returns the rating for text along with its display title.
func TextRating(ratio, size float64, bold bool) (Rating, string) {
	rating := RateText(ratio, size, bold)
	return rating, Title(rating, IsLargeText(size, bold))
}

// NonTextRating returns the rating for non-text content along with its display title.
func NonTextRating(ratio float64) (Rating, string) {
	rating := RateNonText(ratio)
	return rating, Title(rating, false)
}

// Title returns the display title of a rating, e.g. "AA Large Text".
func Title(r Rating, largeText bool) string {
	if largeText && r.Passes() {
		return r.String() + " Large Text"
	}
	return r.String()
}

// FormatRatio formats a ratio the way W3C tools print it, e.g. "4.52:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// Font carries the text attributes that affect rating.
type Font struct {
	Size float64
	Bold bool
}

// Result is a measured contrast between a foreground and a background.
type Result struct {
	Ratio       float64 `json:"ratio"`
	Rating      Rating  `json:"rating"`
	IsLargeText bool    `json:"is_large_text"`
	IsBold      bool    `json:"is_bold"`
}

// Title returns the display title of the result's rating.
func (r Result) Title() string {
	return Title(r.Rating, r.IsLargeText)
}

// Score returns the formatted ratio.
func (r Result) Score() string {
	return FormatRatio(r.Ratio)
}

// Failed reports whether the result is a measurable failure.
func (r Result) Failed() bool {
	return r.Rating == Fail
}

// Measure computes the text contrast between fg and bg.
func Measure(fg, bg colour.Colour, font Font) Result {
	ratio := colour.ContrastRatio(fg, bg)
	result := Result{
		Ratio:       ratio,
		IsLargeText: IsLargeText(font.Size, font.Bold),
		IsBold:      font.Bold,
	}
	if Measurable(fg, bg) {
		result.Rating = RateText(ratio, font.Size, font.Bold)
	}
	return result
}

// MeasureNonText computes the non-text contrast between fg and bg.
func MeasureNonText(fg, bg colour.Colour) Result {
	ratio := colour.ContrastRatio(fg, bg)
	result := Result{Ratio: ratio}
	if Measurable(fg, bg) {
		result.Rating = RateNonText(ratio)
	}
	return result
}

// Measurable reports whether a colour pair can be rated. Clear colours and identical
// pairs are rated NotApplicable rather than Fail.
func Measurable(fg, bg colour.Colour) bool {
	return !fg.IsClear() && !bg.IsClear() && !fg.Equal(bg)
}
