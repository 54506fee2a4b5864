package inspect

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/report"
)

// ErrNotEditable is returned when an edit targets a role that cannot be edited.
var ErrNotEditable = errors.New("property is not editable")

// EditColour changes one colour of an element.
type EditColour struct {
	Role   report.ColourRole
	Colour colour.Colour
}

// EditFor builds the edit command that applies c to the colour an editable property
// targets.
func EditFor(p report.Property, c colour.Colour) (EditColour, error) {
	if !p.Editable() {
		return EditColour{}, fmt.Errorf("%q: %w", p.Title, ErrNotEditable)
	}
	return EditColour{Role: p.Edit, Colour: c}, nil
}

// ApplyEdit applies an edit to a snapshot, revalidates it and returns the updated snapshot
// with its fresh report. If the snapshot was part of the last scan, the scanned element is
// replaced too.
func (c *Context) ApplyEdit(s element.Snapshot, edit EditColour) (element.Snapshot, []*report.Section, error) {
	switch edit.Role {
	case report.RoleForeground:
		s.Colours.Foreground = edit.Colour
	case report.RoleBackground:
		s.Colours.Background = edit.Colour
	default:
		return s, nil, fmt.Errorf("role %s: %w", edit.Role, ErrNotEditable)
	}

	c.logger.Debug("applying colour edit", "id", s.ID, "role", edit.Role, "colour", edit.Colour.Hex())

	el := c.Audit(s)
	for i := range c.elements {
		if c.elements[i].Snapshot.ID == s.ID {
			c.elements[i] = el
			c.syncFilter()
			break
		}
	}
	return s, c.Report(el), nil
}
