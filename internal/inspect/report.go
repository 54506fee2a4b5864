package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/contrast"
	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/report"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// Section headers.
const (
	HeaderWarnings                = "Accessibility Warnings"
	HeaderAccessibilityAttributes = "Accessibility Attributes"
	HeaderAttributes              = "Attributes"
	HeaderColours                 = "Colours"
	HeaderTypography              = "Typography"
	HeaderVoiceOverGestures       = "VoiceOver Gestures"
	HeaderGlobalAccessibility     = "Global Accessibility Properties"
)

// Property titles.
const (
	TitleClassName              = "Class Name"
	TitleText                   = "Text"
	TitleEnabled                = "Enabled"
	TitleFrame                  = "Frame"
	TitleUserInteractionEnabled = "User interaction enabled"
	TitleMinimumSize            = "Minimum size warning"
	TitleContrastRatio          = "W3C Contrast Ratio"
	TitleTextBackground         = "Text & background colour"
	TitleTintBackground         = "Tint & background colour"
	TitleBackgroundColour       = "Background Colour"
	TitleParentBackground       = "Background & parent colour"
	TitleFont                   = "Font"
	TitleFontBold               = "Bold Font"
	TitleFontSize               = "Font Size"
	TitleFontStyle              = "Font Style"
	TitleDynamicTextSupported   = "Dynamic Text supported"
	TitleDynamicTypeValue       = "Dynamic Type name"
	TitleAccessibilityEnabled   = "Accessibility enabled"
	TitleTrait                  = "Trait"
	TitleIdentifier             = "Identifier"
	TitleImageName              = "Image Name"
	TitleLabel                  = "Label"
	TitleHint                   = "Hint"
	TitleValue                  = "Value"
	TitleCustomAction           = "Custom Action"
	TitleEscapeGesture          = "Escape Gesture compatible"
	TitleVoiceOverRunning       = "VoiceOver running"
	TitleBoldTextEnabled        = "Bold Text enabled"
	TitleContentSize            = "Font Size Category"
	TitleReducedTransparency    = "Reduced Transparency enabled"
	TitleDarkerColours          = "Darker colours enabled"
	TitleReducedMotion          = "Reduced motion enabled"
	TitleInvertColours          = "Invert Colours enabled"
)

// ConfigureAccessibilityProperties audits a snapshot and builds its report.
func (c *Context) ConfigureAccessibilityProperties(s element.Snapshot) []*report.Section {
	return c.Report(c.Audit(s))
}

// Report builds the report sections for an audited element. The warnings section is
// present only when the element has warnings; the typography section only for text
// classes.
func (c *Context) Report(el Element) []*report.Section {
	var sections []*report.Section
	if len(el.Warnings) > 0 {
		sections = append(sections, warningsSection(el))
	}
	sections = append(sections,
		accessibilitySection(el.Snapshot),
		attributesSection(el.Snapshot),
		coloursSection(el),
	)
	if el.Snapshot.Class.HasText() {
		sections = append(sections, typographySection(el.Snapshot))
	}
	if s := gesturesSection(el.Snapshot); s.Len() > 0 {
		sections = append(sections, s)
	}
	if c.global != nil {
		sections = append(sections, globalSection(*c.global))
	}
	return sections
}

func warningsSection(el Element) *report.Section {
	section := report.NewSection(HeaderWarnings, report.SectionWarnings)
	for _, t := range el.Warnings {
		section.Upsert(report.NewWarningProperty(t, warningValue(el, t)))
	}
	section.SortWarningsByLevel()
	return section
}

func warningValue(el Element, t warning.Type) string {
	switch t {
	case warning.MinimumSize:
		return element.MinimumSizeTitle(el.Snapshot)
	case warning.ContrastForeground:
		return ratingValue(el.Contrast)
	case warning.ContrastBackground:
		if el.BackgroundContrast != nil {
			return ratingValue(*el.BackgroundContrast)
		}
	case warning.ColourMismatch:
		hexes := make([]string, len(el.Mismatched))
		for i, m := range el.Mismatched {
			hexes[i] = m.Hex()
		}
		return strings.Join(hexes, ", ")
	case warning.LabelUnset:
		return el.Snapshot.ImageName
	}
	return ""
}

func ratingValue(r contrast.Result) string {
	return fmt.Sprintf("%s %s", r.Score(), r.Title())
}

func accessibilitySection(s element.Snapshot) *report.Section {
	section := report.NewSection(HeaderAccessibilityAttributes, report.SectionAccessibilityAttributes)
	section.Upsert(report.NewProperty(TitleAccessibilityEnabled, strconv.FormatBool(s.AccessibilityElement)))
	section.Upsert(report.NewProperty(TitleLabel, s.Label))
	section.Upsert(report.NewProperty(TitleHint, s.Hint))
	section.Upsert(report.NewProperty(TitleValue, s.Value))
	section.Upsert(report.NewProperty(TitleTrait, strings.Join(s.Traits, ", ")))
	if s.Identifier != "" {
		section.Upsert(report.NewProperty(TitleIdentifier, s.Identifier))
	}
	return section
}

func attributesSection(s element.Snapshot) *report.Section {
	section := report.NewSection(HeaderAttributes, report.SectionComponentAttributes)
	section.Upsert(report.NewProperty(TitleClassName, s.Class.DisplayName()))
	if s.Class.HasText() {
		section.Upsert(report.NewProperty(TitleText, s.Text))
	}
	section.Upsert(report.NewProperty(TitleEnabled, strconv.FormatBool(s.Enabled)))
	section.Upsert(report.NewProperty(TitleFrame, s.Frame.String()))
	section.Upsert(report.NewProperty(TitleUserInteractionEnabled, strconv.FormatBool(s.Interactive)))
	if s.Interactive {
		section.Upsert(report.NewProperty(TitleMinimumSize, element.MinimumSizeTitle(s)))
	}
	if s.ImageName != "" {
		p := report.NewProperty(TitleImageName, s.ImageName)
		p.DisplayType = report.DisplayImage
		section.Upsert(p)
	}
	return section
}

func coloursSection(el Element) *report.Section {
	s := el.Snapshot
	fg, bg := s.Colours.Foreground, s.Colours.Background
	section := report.NewSection(HeaderColours, report.SectionColour)

	pairTitle := TitleTintBackground
	if s.Class.HasText() {
		pairTitle = TitleTextBackground
	}
	section.Upsert(report.NewContrastProperty(pairTitle, el.Contrast.Title(), fg, bg,
		TitleBackgroundColour, el.Contrast.Score(), el.Contrast.Failed()))
	section.Upsert(report.NewProperty(TitleContrastRatio, el.Contrast.Score()))

	section.Upsert(report.NewColourProperty(s.ForegroundTitle(), fg).WithEdit(report.RoleForeground))
	section.Upsert(report.NewColourProperty(TitleBackgroundColour, bg).WithEdit(report.RoleBackground))

	if el.BackgroundContrast != nil {
		r := *el.BackgroundContrast
		section.Upsert(report.NewContrastProperty(TitleParentBackground, r.Title(), bg, *s.Colours.Parent,
			"", r.Score(), r.Failed()))
	}

	for i, suggestion := range el.Suggestions {
		section.Upsert(suggestionProperty(i, suggestion))
	}
	return section
}

// suggestionProperty builds a "Colour #n" row. Applying it edits the foreground.
func suggestionProperty(i int, c colour.Colour) report.Property {
	title := fmt.Sprintf("Colour #%d", i+1)
	return report.NewColourProperty(title, c).WithEdit(report.RoleForeground)
}

func typographySection(s element.Snapshot) *report.Section {
	section := report.NewSection(HeaderTypography, report.SectionTypography)
	section.Upsert(report.NewProperty(TitleFont, s.Font.Name))
	section.Upsert(report.NewProperty(TitleFontSize, strconv.FormatFloat(s.Font.Size, 'g', -1, 64)))
	section.Upsert(report.NewProperty(TitleFontBold, strconv.FormatBool(s.Font.Bold)))
	if s.Font.Style != "" {
		section.Upsert(report.NewProperty(TitleFontStyle, s.Font.Style))
	}
	section.Upsert(report.NewProperty(TitleDynamicTextSupported, strconv.FormatBool(s.DynamicType.Supported)))
	if s.DynamicType.Category != "" {
		section.Upsert(report.NewProperty(TitleDynamicTypeValue, s.DynamicType.Category))
	}
	return section
}

func gesturesSection(s element.Snapshot) *report.Section {
	section := report.NewSection(HeaderVoiceOverGestures, report.SectionVoiceOverGestures)
	for i, action := range s.CustomActions {
		title := TitleCustomAction
		if len(s.CustomActions) > 1 {
			title = fmt.Sprintf("%s #%d", TitleCustomAction, i+1)
		}
		p := report.NewProperty(title, action)
		p.DisplayType = report.DisplayAction
		section.Upsert(p)
	}
	if s.EscapeGesture {
		section.Upsert(report.NewProperty(TitleEscapeGesture, "true"))
	}
	return section
}

func globalSection(g element.GlobalSettings) *report.Section {
	section := report.NewSection(HeaderGlobalAccessibility, report.SectionGlobalAccessibility)
	section.Upsert(report.NewProperty(TitleVoiceOverRunning, strconv.FormatBool(g.VoiceOverRunning)))
	section.Upsert(report.NewProperty(TitleBoldTextEnabled, strconv.FormatBool(g.BoldText)))
	if g.ContentSize != "" {
		section.Upsert(report.NewProperty(TitleContentSize, g.ContentSize))
	}
	section.Upsert(report.NewProperty(TitleReducedTransparency, strconv.FormatBool(g.ReduceTransparency)))
	section.Upsert(report.NewProperty(TitleDarkerColours, strconv.FormatBool(g.DarkerColours)))
	section.Upsert(report.NewProperty(TitleReducedMotion, strconv.FormatBool(g.ReduceMotion)))
	section.Upsert(report.NewProperty(TitleInvertColours, strconv.FormatBool(g.InvertColours)))
	return section
}
