// Package element models UI element snapshots and the per-class accessibility rules
// applied to them.
package element

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownClass is returned when a class name cannot be parsed.
var ErrUnknownClass = errors.New("unknown element class")

// Class is the closed set of element classes the validator knows about.
type Class int

const (
	ClassButton Class = iota
	ClassImageView
	ClassLabel
	ClassSlider
	ClassSwitch
	ClassTextField
	ClassTextView
	ClassView
)

var classNames = []struct {
	class       Class
	name        string
	displayName string
}{
	{ClassButton, "button", "UIButton"},
	{ClassImageView, "image-view", "UIImageView"},
	{ClassLabel, "label", "UILabel"},
	{ClassSlider, "slider", "UISlider"},
	{ClassSwitch, "switch", "UISwitch"},
	{ClassTextField, "text-field", "UITextField"},
	{ClassTextView, "text-view", "UITextView"},
	{ClassView, "view", "UIView"},
}

// AllClasses returns every class in declaration order.
func AllClasses() []Class {
	classes := make([]Class, len(classNames))
	for i, c := range classNames {
		classes[i] = c.class
	}
	return classes
}

// String returns the kebab-case name used in snapshot files and flags.
func (c Class) String() string {
	for _, entry := range classNames {
		if entry.class == c {
			return entry.name
		}
	}
	return "unknown"
}

// DisplayName returns the platform class name shown in reports.
func (c Class) DisplayName() string {
	for _, entry := range classNames {
		if entry.class == c {
			return entry.displayName
		}
	}
	return "Unknown"
}

// ContrastExempt reports whether the class is never given a contrast rating. A slider
// track has no textual or icon contrast target.
func (c Class) ContrastExempt() bool {
	return c == ClassSlider
}

// HasText reports whether the class renders text that is subject to text contrast.
func (c Class) HasText() bool {
	switch c {
	case ClassButton, ClassLabel, ClassTextField, ClassTextView:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClass accepts the kebab-case name or the platform class name, case-insensitively.
func ParseClass(s string) (Class, error) {
	name := strings.TrimSpace(s)
	for _, entry := range classNames {
		if strings.EqualFold(entry.name, name) || strings.EqualFold(entry.displayName, name) {
			return entry.class, nil
		}
	}
	return ClassView, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}
