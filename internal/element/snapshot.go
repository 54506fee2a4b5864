package element

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/contrast"
)

// Frame is an element's size in logical units.
type Frame struct {
	Width  float64 `yaml:"width" json:"width" validate:"gte=0"`
	Height float64 `yaml:"height" json:"height" validate:"gte=0"`
}

// String formats the frame as "WxH".
func (f Frame) String() string {
	return fmt.Sprintf("%gx%g", f.Width, f.Height)
}

// Font holds the text metrics of an element.
type Font struct {
	Name  string  `yaml:"name,omitempty" json:"name,omitempty"`
	Size  float64 `yaml:"size,omitempty" json:"size,omitempty" validate:"gte=0,lte=1000"`
	Bold  bool    `yaml:"bold,omitempty" json:"bold,omitempty"`
	Style string  `yaml:"style,omitempty" json:"style,omitempty"`
}

// DynamicType describes whether text follows the user's preferred content size.
type DynamicType struct {
	Supported bool   `yaml:"supported" json:"supported"`
	Category  string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Colours are the colours validated for an element. Foreground is the text colour for
// text classes and the tint colour otherwise. Parent is the background the element sits
// on, when known.
type Colours struct {
	Foreground colour.Colour  `yaml:"foreground" json:"foreground"`
	Background colour.Colour  `yaml:"background" json:"background"`
	Parent     *colour.Colour `yaml:"parent,omitempty" json:"parent,omitempty"`
}

// Snapshot is a static capture of one UI element's attributes.
type Snapshot struct {
	ID                   uuid.UUID   `yaml:"id" json:"id"`
	Class                Class       `yaml:"class" json:"class"`
	Name                 string      `yaml:"name,omitempty" json:"name,omitempty"`
	Text                 string      `yaml:"text,omitempty" json:"text,omitempty"`
	Frame                Frame       `yaml:"frame" json:"frame"`
	Enabled              bool        `yaml:"enabled" json:"enabled"`
	Interactive          bool        `yaml:"interactive" json:"interactive"`
	AccessibilityElement bool        `yaml:"accessibility_element" json:"accessibility_element"`
	Label                string      `yaml:"label,omitempty" json:"label,omitempty"`
	Hint                 string      `yaml:"hint,omitempty" json:"hint,omitempty"`
	Value                string      `yaml:"value,omitempty" json:"value,omitempty"`
	Identifier           string      `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Traits               []string    `yaml:"traits,omitempty" json:"traits,omitempty" validate:"dive,required"`
	Font                 Font        `yaml:"font" json:"font"`
	DynamicType          DynamicType `yaml:"dynamic_type" json:"dynamic_type"`
	TemplateImage        bool        `yaml:"template_image,omitempty" json:"template_image,omitempty"`
	ImageName            string      `yaml:"image_name,omitempty" json:"image_name,omitempty"`
	Colours              Colours     `yaml:"colours" json:"colours"`
	CustomActions        []string    `yaml:"custom_actions,omitempty" json:"custom_actions,omitempty" validate:"dive,required"`
	EscapeGesture        bool        `yaml:"escape_gesture,omitempty" json:"escape_gesture,omitempty"`
}

// DisplayName returns the snapshot's name, falling back to its class name.
func (s Snapshot) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Class.DisplayName()
}

// HasTraits reports whether any trait other than "none" is set.
func (s Snapshot) HasTraits() bool {
	for _, trait := range s.Traits {
		if t := strings.TrimSpace(trait); t != "" && !strings.EqualFold(t, "none") {
			return true
		}
	}
	return false
}

// ForegroundTitle names the foreground colour: text colour for text classes, tint otherwise.
func (s Snapshot) ForegroundTitle() string {
	if s.Class.HasText() {
		return "Text Colour"
	}
	return "Tint Colour"
}

// MeasureContrast computes the foreground/background contrast for the snapshot. Text
// classes are rated as text using their font metrics; everything else as non-text.
// Exempt classes keep the ratio but are rated NotApplicable.
func MeasureContrast(s Snapshot) contrast.Result {
	if s.Class.ContrastExempt() {
		return contrast.Result{Ratio: colour.ContrastRatio(s.Colours.Foreground, s.Colours.Background)}
	}
	if s.Class.HasText() {
		return contrast.Measure(s.Colours.Foreground, s.Colours.Background, contrast.Font{
			Size: s.Font.Size,
			Bold: s.Font.Bold,
		})
	}
	return contrast.MeasureNonText(s.Colours.Foreground, s.Colours.Background)
}

// MeasureBackgroundContrast computes the non-text contrast between the element's
// background and its parent. ok is false when no parent colour is known.
func MeasureBackgroundContrast(s Snapshot) (result contrast.Result, ok bool) {
	if s.Colours.Parent == nil {
		return contrast.Result{}, false
	}
	return contrast.MeasureNonText(s.Colours.Background, *s.Colours.Parent), true
}
