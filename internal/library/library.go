// Package library holds the colour library: the approved (default) colours an app is
// expected to use, and colours suggested while auditing.
package library

import (
	"slices"

	"github.com/jmylchreest/a11ykit/internal/colour"
)

// Swatch is a named colour.
type Swatch struct {
	Colour colour.Colour `yaml:"colour" json:"colour"`
	Title  string        `yaml:"title" json:"title" validate:"required"`
}

// Library owns the approved and suggested colour lists. Neither list holds the same
// colour twice. A Library is not safe for concurrent use.
type Library struct {
	defaults  []Swatch
	suggested []Swatch
}

// New creates a library seeded with approved colours. Duplicates are dropped.
func New(defaults ...Swatch) *Library {
	l := &Library{}
	l.ReplaceDefaultColours(defaults)
	return l
}

// Defaults returns a copy of the approved colours.
func (l *Library) Defaults() []Swatch {
	return slices.Clone(l.defaults)
}

// Suggested returns a copy of the suggested colours.
func (l *Library) Suggested() []Swatch {
	return slices.Clone(l.suggested)
}

// AddDefaultColour adds an approved colour. It reports false when the colour is
// already approved.
func (l *Library) AddDefaultColour(c colour.Colour, title string) bool {
	return addSwatch(&l.defaults, Swatch{Colour: c, Title: title})
}

// ReplaceDefaultColours replaces the approved colours.
func (l *Library) ReplaceDefaultColours(swatches []Swatch) {
	l.defaults = nil
	for _, s := range swatches {
		addSwatch(&l.defaults, s)
	}
}

// RemoveDefaultColour removes an approved colour. Missing colours are ignored.
func (l *Library) RemoveDefaultColour(c colour.Colour) bool {
	return removeSwatch(&l.defaults, c)
}

// AddSuggestedColour records a suggested colour. It reports false when the colour is
// already suggested.
func (l *Library) AddSuggestedColour(c colour.Colour, title string) bool {
	return addSwatch(&l.suggested, Swatch{Colour: c, Title: title})
}

// RemoveSuggestedColour removes a suggested colour. Missing colours are ignored.
func (l *Library) RemoveSuggestedColour(c colour.Colour) bool {
	return removeSwatch(&l.suggested, c)
}

// RemoveAllSuggestedColours clears the suggested colours.
func (l *Library) RemoveAllSuggestedColours() {
	l.suggested = nil
}

// HasDefaults reports whether any approved colours are registered.
func (l *Library) HasDefaults() bool {
	return len(l.defaults) > 0
}

// IsApproved reports whether c matches an approved colour within tolerance (0 is exact).
func (l *Library) IsApproved(c colour.Colour, tolerance float64) bool {
	_, ok := l.MatchDefault(c, tolerance)
	return ok
}

// MatchDefault returns the approved swatch matching c within tolerance.
func (l *Library) MatchDefault(c colour.Colour, tolerance float64) (Swatch, bool) {
	for _, s := range l.defaults {
		if s.Colour.Within(c, tolerance) {
			return s, true
		}
	}
	return Swatch{}, false
}

func addSwatch(list *[]Swatch, s Swatch) bool {
	if indexOf(*list, s.Colour) >= 0 {
		return false
	}
	*list = append(*list, s)
	return true
}

func removeSwatch(list *[]Swatch, c colour.Colour) bool {
	i := indexOf(*list, c)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}

func indexOf(list []Swatch, c colour.Colour) int {
	return slices.IndexFunc(list, func(s Swatch) bool {
		return s.Colour.Equal(c)
	})
}
