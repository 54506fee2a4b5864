// Package warning defines the accessibility warning taxonomy: warning types, severity
// levels and the catalog mapping one to the other.
package warning

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknown is returned when a level or type name cannot be parsed.
var ErrUnknown = errors.New("unknown warning")

// Level is the severity of a warning. Levels are totally ordered: High > Medium > Low > Pass.
type Level int

const (
	// LevelPass means no warning.
	LevelPass Level = iota
	// LevelLow is advisory.
	LevelLow
	// LevelMedium affects assistive technology output.
	LevelMedium
	// LevelHigh blocks users of assistive technology.
	LevelHigh
)

var levelNames = map[Level]string{
	LevelPass:   "pass",
	LevelLow:    "low",
	LevelMedium: "medium",
	LevelHigh:   "high",
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// DisplayName returns the capitalised name shown in filters.
func (l Level) DisplayName() string {
	name := l.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// IconName returns the icon key for the level.
func (l Level) IconName() string {
	return "icon_warning_" + l.String()
}

// Compare orders levels by severity.
func (l Level) Compare(other Level) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return LevelPass, fmt.Errorf("%w level: %q", ErrUnknown, s)
}

// AllLevels returns every level from most to least severe.
func AllLevels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow, LevelPass}
}

// HighestLevel returns the most severe level present, or LevelPass for an empty input.
func HighestLevel(levels []Level) Level {
	highest := LevelPass
	for _, l := range levels {
		if l > highest {
			highest = l
		}
	}
	return highest
}

// Type identifies a single accessibility finding.
type Type int

const (
	// Disabled: interactive element not exposed as an accessibility element.
	Disabled Type = iota
	// HintMissing: accessibility hint is empty.
	HintMissing
	// LabelMissing: accessibility label is empty.
	LabelMissing
	// TraitMissing: no accessibility traits.
	TraitMissing
	// ValueMissing: accessibility value is empty.
	ValueMissing
	// ContrastForeground: foreground/background contrast below WCAG AA.
	ContrastForeground
	// ContrastBackground: background/parent background contrast below WCAG AA.
	ContrastBackground
	// DynamicText: text does not scale with the content size category.
	DynamicText
	// MinimumSize: interactive element smaller than the minimum touch target.
	MinimumSize
	// LabelUnset: label falls back to a default such as the image name.
	LabelUnset
	// ColourMismatch: colour not in the approved colour library.
	ColourMismatch
)

// Entry is a catalog row.
type Entry struct {
	Type  Type
	Name  string
	Level Level
	Title string
}

// IconName returns the icon key for the entry's level.
func (e Entry) IconName() string {
	return e.Level.IconName()
}

// catalog is indexed by Type.
var catalog = []Entry{
	{Type: Disabled, Name: "accessibility-disabled-missing", Level: LevelHigh, Title: "Missing isAccessibilityElement"},
	{Type: HintMissing, Name: "hint-missing", Level: LevelMedium, Title: "Missing accessibilityHint"},
	{Type: LabelMissing, Name: "label-missing", Level: LevelMedium, Title: "Missing accessibilityLabel"},
	{Type: TraitMissing, Name: "trait-missing", Level: LevelMedium, Title: "Missing accessibilityTraits"},
	{Type: ValueMissing, Name: "value-missing", Level: LevelMedium, Title: "Missing accessibilityValue"},
	{Type: ContrastForeground, Name: "contrast-foreground-fail", Level: LevelHigh, Title: "W3C Colour Contrast warning"},
	{Type: ContrastBackground, Name: "contrast-background-fail", Level: LevelHigh, Title: "W3C Background Colour Contrast warning"},
	{Type: DynamicText, Name: "dynamic-text-unsupported", Level: LevelLow, Title: "Dynamic text sizes are not supported"},
	{Type: MinimumSize, Name: "minimum-size-fail", Level: LevelLow, Title: "Minimum Size warning"},
	{Type: LabelUnset, Name: "label-unset", Level: LevelLow, Title: "Missing accessibilityLabel not set"},
	{Type: ColourMismatch, Name: "colour-mismatch", Level: LevelLow, Title: "Invalid colour used"},
}

// Lookup returns the catalog entry for a type.
func Lookup(t Type) (Entry, bool) {
	if t < 0 || int(t) >= len(catalog) {
		return Entry{}, false
	}
	return catalog[t], true
}

// Level returns the catalog severity of the type.
func (t Type) Level() Level {
	entry, _ := Lookup(t)
	return entry.Level
}

// Title returns the display title of the type.
func (t Type) Title() string {
	entry, _ := Lookup(t)
	return entry.Title
}

// String returns the kebab-case name of the type.
func (t Type) String() string {
	if entry, ok := Lookup(t); ok {
		return entry.Name
	}
	return "unknown"
}

// IconName returns the icon key for the type's level.
func (t Type) IconName() string {
	return t.Level().IconName()
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType parses a kebab-case type name, case-insensitively.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, entry := range catalog {
		if entry.Name == name {
			return entry.Type, nil
		}
	}
	return 0, fmt.Errorf("%w type: %q", ErrUnknown, s)
}

// AllTypes returns every type in enumeration order.
func AllTypes() []Type {
	types := make([]Type, len(catalog))
	for i, entry := range catalog {
		types[i] = entry.Type
	}
	return types
}

// TypesForLevels returns, in enumeration order, the types whose level is in levels.
func TypesForLevels(levels []Level) []Type {
	var types []Type
	for _, entry := range catalog {
		if slices.Contains(levels, entry.Level) {
			types = append(types, entry.Type)
		}
	}
	return types
}

// HighestLevelOf returns the most severe level among the given types.
func HighestLevelOf(types []Type) Level {
	highest := LevelPass
	for _, t := range types {
		if l := t.Level(); l > highest {
			highest = l
		}
	}
	return highest
}

// Sort orders types by level, most severe first, then by enumeration order.
func Sort(types []Type) {
	slices.SortStableFunc(types, func(a, b Type) int {
		if c := b.Level().Compare(a.Level()); c != 0 {
			return c
		}
		return int(a) - int(b)
	})
}
