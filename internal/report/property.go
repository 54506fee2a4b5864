// Package report provides the structured report model produced by validation: ordered
// sections of property rows.
package report

import (
	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// DisplayType tells the presentation layer how to render a property.
type DisplayType int

const (
	DisplayTitleValue DisplayType = iota
	DisplayColour
	DisplayImage
	DisplayContrast
	DisplayAction
)

// String returns the display type name.
func (d DisplayType) String() string {
	switch d {
	case DisplayColour:
		return "colour"
	case DisplayImage:
		return "image"
	case DisplayContrast:
		return "contrast"
	case DisplayAction:
		return "action"
	default:
		return "title-value"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DisplayType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ColourRole identifies which colour of an element an edit targets.
type ColourRole int

const (
	// RoleNone marks a property that cannot be edited.
	RoleNone ColourRole = iota
	RoleForeground
	RoleBackground
)

// String returns the role name.
func (r ColourRole) String() string {
	switch r {
	case RoleForeground:
		return "foreground"
	case RoleBackground:
		return "background"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r ColourRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Finding attaches a warning to a property.
type Finding struct {
	Type  warning.Type  `json:"type"`
	Level warning.Level `json:"level"`
}

// Property is one row of a report section. Properties are values: the With helpers
// return modified copies.
type Property struct {
	Title           string         `json:"title"`
	Value           string         `json:"value,omitempty"`
	DisplayType     DisplayType    `json:"display_type"`
	Colour          *colour.Colour `json:"colour,omitempty"`
	AlternateColour *colour.Colour `json:"alternate_colour,omitempty"`
	AlternateTitle  string         `json:"alternate_title,omitempty"`
	ContrastScore   string         `json:"contrast_score,omitempty"`
	ShowWarning     bool           `json:"show_warning,omitempty"`
	Finding         *Finding       `json:"finding,omitempty"`
	Edit            ColourRole     `json:"edit,omitempty"`
}

// NewProperty creates a title/value row.
func NewProperty(title, value string) Property {
	return Property{Title: title, Value: value}
}

// NewColourProperty creates a colour swatch row.
func NewColourProperty(title string, c colour.Colour) Property {
	return Property{
		Title:       title,
		Value:       c.Hex(),
		DisplayType: DisplayColour,
		Colour:      &c,
	}
}

// NewContrastProperty creates a foreground/background pair row with its contrast score.
func NewContrastProperty(title, value string, fg, bg colour.Colour, alternateTitle, score string, showWarning bool) Property {
	return Property{
		Title:           title,
		Value:           value,
		DisplayType:     DisplayContrast,
		Colour:          &fg,
		AlternateColour: &bg,
		AlternateTitle:  alternateTitle,
		ContrastScore:   score,
		ShowWarning:     showWarning,
	}
}

// NewWarningProperty creates a warning row from the catalog.
func NewWarningProperty(t warning.Type, value string) Property {
	return Property{
		Title:       t.Title(),
		Value:       value,
		ShowWarning: true,
		Finding:     &Finding{Type: t, Level: t.Level()},
	}
}

// Level returns the warning level of the property, LevelPass when it has none.
func (p Property) Level() warning.Level {
	if p.Finding == nil {
		return warning.LevelPass
	}
	return p.Finding.Level
}

// Editable reports whether an edit command can target this property.
func (p Property) Editable() bool {
	return p.Edit != RoleNone
}

// WithColour returns a copy showing a different colour.
func (p Property) WithColour(c colour.Colour) Property {
	p.Colour = &c
	if p.DisplayType == DisplayColour {
		p.Value = c.Hex()
	}
	return p
}

// WithEdit returns a copy that an edit command for role can target.
func (p Property) WithEdit(role ColourRole) Property {
	p.Edit = role
	return p
}
