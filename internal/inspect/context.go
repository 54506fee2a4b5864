// Package inspect provides the validation context: it owns the colour library and the
// filter engine, audits element snapshots and builds their reports.
package inspect

import (
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/contrast"
	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/filter"
	"github.com/jmylchreest/a11ykit/internal/library"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// Options control optional validation behaviour.
type Options struct {
	// ValidatingColours enables the colour-mismatch rule against the approved colours.
	ValidatingColours bool

	// ColourTolerance is the per-channel tolerance, in [0,1], used when matching approved
	// colours. Zero requires an exact match.
	ColourTolerance float64

	// SuggestColours records better-contrast alternatives for contrast failures.
	SuggestColours bool
}

// Context is the long-lived validation context. It is not safe for concurrent use;
// callers serialise access.
type Context struct {
	library *library.Library
	filter  *filter.Engine
	options Options
	global  *element.GlobalSettings
	logger  hclog.Logger

	elements []Element
}

// Builder provides a fluent interface for constructing a Context.
type Builder struct {
	library *library.Library
	options Options
	global  *element.GlobalSettings
	logger  hclog.Logger
}

// NewBuilder creates a builder with an empty library, suggestions enabled and no logging.
func NewBuilder() *Builder {
	return &Builder{
		options: Options{SuggestColours: true},
	}
}

// WithLibrary sets the colour library.
func (b *Builder) WithLibrary(lib *library.Library) *Builder {
	b.library = lib
	return b
}

// WithOptions sets the validation options.
func (b *Builder) WithOptions(opts Options) *Builder {
	b.options = opts
	return b
}

// WithGlobalSettings sets the device-wide settings reported with every element.
func (b *Builder) WithGlobalSettings(settings *element.GlobalSettings) *Builder {
	b.global = settings
	return b
}

// WithLogger sets the logger.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build creates the Context.
func (b *Builder) Build() *Context {
	ctx := &Context{
		library: b.library,
		filter:  filter.NewEngine(),
		options: b.options,
		global:  b.global,
		logger:  b.logger,
	}
	if ctx.library == nil {
		ctx.library = library.New()
	}
	if ctx.logger == nil {
		ctx.logger = hclog.NewNullLogger()
	}
	return ctx
}

// Library returns the colour library owned by the context.
func (c *Context) Library() *library.Library {
	return c.library
}

// Filter returns the filter engine owned by the context.
func (c *Context) Filter() *filter.Engine {
	return c.filter
}

// Options returns the validation options.
func (c *Context) Options() Options {
	return c.options
}

// Element is an audited snapshot.
type Element struct {
	Snapshot element.Snapshot `json:"snapshot"`
	Contrast contrast.Result  `json:"contrast"`
	// BackgroundContrast is set when the parent background colour is known.
	BackgroundContrast *contrast.Result `json:"background_contrast,omitempty"`
	Warnings           []warning.Type   `json:"warnings"`
	// Mismatched are the element's colours missing from the approved colours.
	Mismatched  []colour.Colour `json:"mismatched,omitempty"`
	Suggestions []colour.Colour `json:"suggestions,omitempty"`
}

// ObjectClass implements filter.Target.
func (e Element) ObjectClass() element.Class {
	return e.Snapshot.Class
}

// WarningTypes implements filter.Target.
func (e Element) WarningTypes() []warning.Type {
	return e.Warnings
}

// Level returns the element's aggregate warning level.
func (e Element) Level() warning.Level {
	return warning.HighestLevelOf(e.Warnings)
}

// Audit validates one snapshot. Mismatched colours and contrast suggestions are recorded
// in the library's suggested colours.
func (c *Context) Audit(s element.Snapshot) Element {
	result := element.MeasureContrast(s)
	el := Element{
		Snapshot: s,
		Contrast: result,
		Warnings: element.Validate(s, result),
	}
	if bg, ok := element.MeasureBackgroundContrast(s); ok {
		el.BackgroundContrast = &bg
	}

	if mismatched := c.mismatchedColours(s); len(mismatched) > 0 {
		el.Mismatched = mismatched
		el.Warnings = append(el.Warnings, warning.ColourMismatch)
		for _, m := range mismatched {
			c.library.AddSuggestedColour(m, m.Hex())
		}
		warning.Sort(el.Warnings)
	}

	if c.options.SuggestColours && slices.Contains(el.Warnings, warning.ContrastForeground) {
		el.Suggestions = colour.SuggestColours(s.Colours.Foreground, s.Colours.Background, result.Ratio)
		for _, suggestion := range el.Suggestions {
			c.library.AddSuggestedColour(suggestion, suggestion.Hex())
		}
	}

	c.logger.Debug("audited element",
		"id", s.ID,
		"class", s.Class,
		"ratio", result.Score(),
		"level", el.Level(),
		"warnings", len(el.Warnings))
	return el
}

// mismatchedColours returns the element's foreground and background colours that are not
// approved. Clear colours are never reported.
func (c *Context) mismatchedColours(s element.Snapshot) []colour.Colour {
	if !c.options.ValidatingColours || !c.library.HasDefaults() {
		return nil
	}
	var mismatched []colour.Colour
	for _, col := range []colour.Colour{s.Colours.Foreground, s.Colours.Background} {
		if col.IsClear() || c.library.IsApproved(col, c.options.ColourTolerance) {
			continue
		}
		if !slices.ContainsFunc(mismatched, col.Equal) {
			mismatched = append(mismatched, col)
		}
	}
	return mismatched
}
