package element

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/a11ykit/internal/contrast"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// MinimumTouchTarget is the smallest width and height, in logical units, of an interactive element.
const MinimumTouchTarget = 44.0

// RuleFunc returns the active warnings for one element. The contrast result is the
// element's precomputed foreground/background measurement.
type RuleFunc func(s Snapshot, r contrast.Result) []warning.Type

// Rules maps each class to its rule set. Classes without an entry get the base rules.
var Rules = map[Class]RuleFunc{
	ClassButton:    CheckButton,
	ClassImageView: CheckImageView,
	ClassLabel:     CheckLabel,
	ClassSlider:    CheckSlider,
	ClassSwitch:    CheckSwitch,
	ClassTextField: CheckTextField,
	ClassTextView:  CheckTextView,
	ClassView:      checkBaseRule,
}

// Validate runs the rule set for the snapshot's class and returns its warnings ordered
// by level, most severe first.
func Validate(s Snapshot, r contrast.Result) []warning.Type {
	rule, ok := Rules[s.Class]
	if !ok {
		rule = checkBaseRule
	}
	types := rule(s, r)
	warning.Sort(types)
	return types
}

// CheckBase applies the rules shared by every class.
func CheckBase(s Snapshot) []warning.Type {
	var types []warning.Type
	if HasMinimumSizeWarning(s) {
		types = append(types, warning.MinimumSize)
	}
	if HasMissingFlagWarning(s) {
		types = append(types, warning.Disabled)
	}
	if isBlank(s.Label) {
		types = append(types, warning.LabelMissing)
	}
	if isBlank(s.Hint) {
		types = append(types, warning.HintMissing)
	}
	if isBlank(s.Value) {
		types = append(types, warning.ValueMissing)
	}
	if !s.HasTraits() {
		types = append(types, warning.TraitMissing)
	}
	return types
}

func checkBaseRule(s Snapshot, _ contrast.Result) []warning.Type {
	return CheckBase(s)
}

// CheckButton checks title contrast and the button background against its parent.
func CheckButton(s Snapshot, r contrast.Result) []warning.Type {
	types := CheckBase(s)
	if r.Failed() {
		types = append(types, warning.ContrastForeground)
	}
	if HasBackgroundContrastWarning(s) {
		types = append(types, warning.ContrastBackground)
	}
	return types
}

// CheckLabel checks text contrast.
func CheckLabel(s Snapshot, r contrast.Result) []warning.Type {
	types := CheckBase(s)
	if r.Failed() {
		types = append(types, warning.ContrastForeground)
	}
	return types
}

// CheckSwitch applies the base rules only; switches have no text to rate.
func CheckSwitch(s Snapshot, _ contrast.Result) []warning.Type {
	return CheckBase(s)
}

// CheckSlider applies the base rules only; a slider track has no textual contrast target.
func CheckSlider(s Snapshot, _ contrast.Result) []warning.Type {
	return CheckBase(s)
}

// CheckImageView flags labels that fall back to the image name, and checks tint contrast
// when the image is rendered as a template.
func CheckImageView(s Snapshot, r contrast.Result) []warning.Type {
	types := CheckBase(s)
	if HasDefaultImageLabel(s) {
		types = append(types, warning.LabelUnset)
	}
	if s.TemplateImage && r.Failed() {
		types = append(types, warning.ContrastForeground)
	}
	return types
}

// CheckTextField checks text contrast, dynamic type support and the field background.
func CheckTextField(s Snapshot, r contrast.Result) []warning.Type {
	types := CheckTextView(s, r)
	if HasBackgroundContrastWarning(s) {
		types = append(types, warning.ContrastBackground)
	}
	return types
}

// CheckTextView checks text contrast and dynamic type support.
func CheckTextView(s Snapshot, r contrast.Result) []warning.Type {
	types := CheckBase(s)
	if r.Failed() {
		types = append(types, warning.ContrastForeground)
	}
	if !s.DynamicType.Supported {
		types = append(types, warning.DynamicText)
	}
	return types
}

// HasMinimumSizeWarning reports an interactive element narrower or shorter than the
// minimum touch target.
func HasMinimumSizeWarning(s Snapshot) bool {
	if !s.Interactive {
		return false
	}
	return s.Frame.Width < MinimumTouchTarget || s.Frame.Height < MinimumTouchTarget
}

// MinimumSizeTitle describes the element's size against the minimum touch target.
func MinimumSizeTitle(s Snapshot) string {
	if !HasMinimumSizeWarning(s) {
		return fmt.Sprintf("%s meets %gx%g", s.Frame, MinimumTouchTarget, MinimumTouchTarget)
	}
	return fmt.Sprintf("%s is smaller than %gx%g", s.Frame, MinimumTouchTarget, MinimumTouchTarget)
}

// HasMissingFlagWarning reports an interactive element, other than a plain container
// view, that is not exposed as an accessibility element.
func HasMissingFlagWarning(s Snapshot) bool {
	return s.Interactive && s.Class != ClassView && !s.AccessibilityElement
}

// HasDefaultImageLabel reports an image view whose label is just its image name.
func HasDefaultImageLabel(s Snapshot) bool {
	return s.ImageName != "" && strings.EqualFold(strings.TrimSpace(s.Label), s.ImageName)
}

// HasBackgroundContrastWarning reports a measurable failure between the element
// background and its parent background.
func HasBackgroundContrastWarning(s Snapshot) bool {
	result, ok := MeasureBackgroundContrast(s)
	return ok && result.Failed()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
