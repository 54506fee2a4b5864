// Package colour provides utility functions for colour manipulation and analysis.
package colour

import (
	"math"
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c Colour) float64 {
	// Apply gamma correction.
	r := gammaCorrect(clampUnit(c.R))
	g := gammaCorrect(clampUnit(c.G))
	b := gammaCorrect(clampUnit(c.B))

	// Calculate luminance using WCAG formula.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// Meets WCAG AA standard for normal text at 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b Colour) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
