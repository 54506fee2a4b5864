package report

import (
	"encoding/json"
	"slices"

	"github.com/jmylchreest/a11ykit/internal/warning"
)

// SectionType identifies what a section holds.
type SectionType int

const (
	SectionWarnings SectionType = iota
	SectionAccessibilityAttributes
	SectionComponentAttributes
	SectionColour
	SectionTypography
	SectionVoiceOverGestures
	SectionGlobalAccessibility
)

// String returns the section type name.
func (t SectionType) String() string {
	switch t {
	case SectionWarnings:
		return "warnings"
	case SectionAccessibilityAttributes:
		return "accessibility-attributes"
	case SectionComponentAttributes:
		return "component-attributes"
	case SectionColour:
		return "colour"
	case SectionTypography:
		return "typography"
	case SectionVoiceOverGestures:
		return "voiceover-gestures"
	case SectionGlobalAccessibility:
		return "global-accessibility"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SectionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Section is an ordered set of properties keyed by title. Upserting a property whose
// title already exists replaces it in place.
type Section struct {
	Header string
	Type   SectionType

	titles []string
	items  map[string]Property
}

// NewSection creates an empty section.
func NewSection(header string, sectionType SectionType) *Section {
	return &Section{
		Header: header,
		Type:   sectionType,
		items:  make(map[string]Property),
	}
}

// Upsert adds p, replacing any property with the same title without changing its position.
func (s *Section) Upsert(p Property) {
	if s.items == nil {
		s.items = make(map[string]Property)
	}
	if _, exists := s.items[p.Title]; !exists {
		s.titles = append(s.titles, p.Title)
	}
	s.items[p.Title] = p
}

// Remove deletes the property with the given title. Missing titles are ignored.
func (s *Section) Remove(title string) {
	if _, exists := s.items[title]; !exists {
		return
	}
	delete(s.items, title)
	s.titles = slices.DeleteFunc(s.titles, func(t string) bool { return t == title })
}

// Get returns the property with the given title.
func (s *Section) Get(title string) (Property, bool) {
	p, ok := s.items[title]
	return p, ok
}

// Items returns the properties in order.
func (s *Section) Items() []Property {
	items := make([]Property, len(s.titles))
	for i, title := range s.titles {
		items[i] = s.items[title]
	}
	return items
}

// Len returns the number of properties.
func (s *Section) Len() int {
	return len(s.titles)
}

// HighestLevel returns the most severe warning level among the properties.
func (s *Section) HighestLevel() warning.Level {
	levels := make([]warning.Level, 0, len(s.titles))
	for _, title := range s.titles {
		levels = append(levels, s.items[title].Level())
	}
	return warning.HighestLevel(levels)
}

// SortWarningsByLevel orders a warnings section by level, most severe first, then by
// warning type. Other section types are left untouched.
func (s *Section) SortWarningsByLevel() {
	if s.Type != SectionWarnings {
		return
	}
	slices.SortStableFunc(s.titles, func(a, b string) int {
		pa, pb := s.items[a], s.items[b]
		if c := pb.Level().Compare(pa.Level()); c != 0 {
			return c
		}
		return findingOrder(pa) - findingOrder(pb)
	})
}

// MarshalJSON encodes the section with its properties in order.
func (s *Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Header string        `json:"header"`
		Type   SectionType   `json:"type"`
		Level  warning.Level `json:"level"`
		Items  []Property    `json:"items"`
	}{
		Header: s.Header,
		Type:   s.Type,
		Level:  s.HighestLevel(),
		Items:  s.Items(),
	})
}

// RemoveSectionType returns sections without those of type t.
func RemoveSectionType(sections []*Section, t SectionType) []*Section {
	return slices.DeleteFunc(slices.Clone(sections), func(s *Section) bool {
		return s.Type == t
	})
}

// FindSection returns the first section of type t.
func FindSection(sections []*Section, t SectionType) (*Section, bool) {
	for _, s := range sections {
		if s.Type == t {
			return s, true
		}
	}
	return nil, false
}

func findingOrder(p Property) int {
	if p.Finding == nil {
		return len(warning.AllTypes())
	}
	return int(p.Finding.Type)
}
