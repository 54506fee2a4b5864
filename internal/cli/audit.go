package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/inspect"
	"github.com/jmylchreest/a11ykit/internal/report"
	"github.com/jmylchreest/a11ykit/internal/snapshot"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

var (
	// Audit command flags
	auditLevels          = newLevelList()
	auditTypes           = newTypeList()
	auditClasses         = newClassList()
	auditFormat          = &formatValue{format: formatTable}
	auditValidateColours bool
	auditPreview         bool
	auditNoSuggest       bool
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <snapshot-file>",
	Short: "Audit a snapshot of UI elements",
	Long: `Audit every element of a snapshot document and print its accessibility findings.

Snapshot documents are YAML or JSON, optionally compressed (.gz, .bz2, .xz).
Findings are advisory: the command succeeds whatever it finds.

Filters narrow the printed elements. Each filter flag is repeatable and takes
comma separated values; an element passes when it matches every given filter.
  --level   the element's highest warning level (high, medium, low, pass)
  --type    any of the element's warnings (e.g. label-missing)
  --class   the element class (button, label, switch, image-view, ...)

Examples:
  # Audit a snapshot
  a11ykit audit checkout.yaml

  # Only elements whose worst finding is high
  a11ykit audit --level high checkout.yaml

  # Full per-element report with colour previews
  a11ykit audit --format report --preview checkout.yaml.xz

  # Check colours against the approved palette from the config file
  a11ykit audit --validate-colours checkout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Var(auditLevels, "level", "filter by highest warning level (high, medium, low, pass)")
	auditCmd.Flags().Var(auditTypes, "type", "filter by warning type (e.g. contrast-foreground-fail, label-missing)")
	auditCmd.Flags().Var(auditClasses, "class", "filter by element class (e.g. button, label)")
	auditCmd.Flags().VarP(auditFormat, "format", "f", "output format (table, json, report)")
	auditCmd.Flags().BoolVar(&auditValidateColours, "validate-colours", false, "flag colours missing from the approved colours")
	auditCmd.Flags().BoolVar(&auditPreview, "preview", false, "show colour previews in terminal")
	auditCmd.Flags().BoolVar(&auditNoSuggest, "no-suggestions", false, "do not suggest better-contrast colours")
}

// runAudit executes the audit command.
func runAudit(cmd *cobra.Command, args []string) error {
	doc, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	opts := appConfig.Options()
	if auditValidateColours {
		opts.ValidatingColours = true
	}
	if auditNoSuggest {
		opts.SuggestColours = false
	}

	ctx := inspect.NewBuilder().
		WithLibrary(appConfig.Library()).
		WithOptions(opts).
		WithGlobalSettings(doc.Global).
		WithLogger(logger.Named("inspect")).
		Build()

	if err := applyFilters(ctx, auditLevels.Values(), auditTypes.Values(), auditClasses.Values()); err != nil {
		return err
	}

	ctx.Scan(doc.Elements)
	logger.Debug("filter applied", "state", ctx.Filter().State(), "visible", ctx.Filter().Count())

	out := cmd.OutOrStdout()
	preview := auditPreview && colour.SupportsANSIColours(out)
	switch auditFormat.format {
	case formatJSON:
		return writeAuditJSON(out, ctx)
	case formatReport:
		return writeAuditReport(out, ctx, preview)
	default:
		return writeAuditTable(out, ctx, preview)
	}
}

// applyFilters toggles the requested filters. Levels go first because they decide which
// types are selectable. Repeated values are toggled once.
func applyFilters(ctx *inspect.Context, levels []warning.Level, types []warning.Type, classes []element.Class) error {
	engine := ctx.Filter()
	for _, l := range unique(levels) {
		engine.ToggleLevel(l)
	}
	for _, t := range unique(types) {
		if !engine.ToggleType(t) {
			return fmt.Errorf("warning type %s is not selectable with levels %s", t, joinStrings(engine.Levels()))
		}
	}
	for _, c := range unique(classes) {
		engine.ToggleClass(c)
	}
	return nil
}

// unique returns values without repeats, keeping first occurrences in order.
func unique[T comparable](values []T) []T {
	seen := make(map[T]bool, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func writeAuditTable(w io.Writer, ctx *inspect.Context, preview bool) error {
	table := NewTable([]string{"Element", "Class", "Level", "Contrast", "Warnings"})
	table.SetColumnMaxWidth(4, 60)
	for _, el := range ctx.Visible() {
		s := el.Snapshot
		contrastCell := el.Contrast.Score() + " " + el.Contrast.Title()
		if preview {
			contrastCell = colour.PreviewPair(s.Colours.Foreground, s.Colours.Background, "Aa", 4) + " " + contrastCell
		}
		table.AddRow([]string{
			s.DisplayName(),
			s.Class.String(),
			el.Level().DisplayName(),
			contrastCell,
			joinStrings(el.Warnings),
		})
	}

	if _, err := io.WriteString(w, table.Render()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return writeSummary(w, ctx.Summary())
}

func writeSummary(w io.Writer, summary inspect.Summary) error {
	var parts []string
	for _, level := range warning.AllLevels() {
		if n := summary.ByLevel[level]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", level.DisplayName(), n))
		}
	}
	_, err := fmt.Fprintf(w, "\n%d of %d elements shown. %s\n", summary.Visible, summary.Total, strings.Join(parts, ", "))
	return err
}

type auditJSON struct {
	Summary  inspect.Summary `json:"summary"`
	Elements []elementJSON   `json:"elements"`
}

type elementJSON struct {
	inspect.Element
	Level    warning.Level     `json:"level"`
	Sections []*report.Section `json:"sections"`
}

func writeAuditJSON(w io.Writer, ctx *inspect.Context) error {
	out := auditJSON{Summary: ctx.Summary()}
	for _, el := range ctx.Visible() {
		out.Elements = append(out.Elements, elementJSON{
			Element:  el,
			Level:    el.Level(),
			Sections: ctx.Report(el),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeAuditReport(w io.Writer, ctx *inspect.Context, preview bool) error {
	for _, el := range ctx.Visible() {
		fmt.Fprintf(w, "== %s (%s) [%s]\n", el.Snapshot.DisplayName(), el.Snapshot.ID, el.Level().DisplayName())
		for _, section := range ctx.Report(el) {
			fmt.Fprintf(w, "\n%s\n", section.Header)
			for _, p := range section.Items() {
				fmt.Fprintf(w, "  %s\n", formatProperty(p, preview))
			}
		}
		fmt.Fprintln(w)
	}
	return writeSummary(w, ctx.Summary())
}

// formatProperty renders one report row.
func formatProperty(p report.Property, preview bool) string {
	var b strings.Builder
	if p.Finding != nil {
		fmt.Fprintf(&b, "[%s] ", p.Finding.Level.DisplayName())
	}
	b.WriteString(p.Title)

	switch p.DisplayType {
	case report.DisplayColour:
		if p.Colour != nil {
			b.WriteString(": ")
			if preview {
				b.WriteString(colour.FormatWithPreview(*p.Colour, 2))
			} else {
				b.WriteString(p.Colour.Hex())
			}
		}
	case report.DisplayContrast:
		fmt.Fprintf(&b, ": %s %s", p.ContrastScore, p.Value)
		if preview && p.Colour != nil && p.AlternateColour != nil {
			b.WriteString(" ")
			b.WriteString(colour.PreviewPair(*p.Colour, *p.AlternateColour, "Aa", 4))
		}
	default:
		if p.Value != "" {
			b.WriteString(": ")
			b.WriteString(p.Value)
		}
	}

	if p.Editable() {
		fmt.Fprintf(&b, " (editable %s)", p.Edit)
	}
	return b.String()
}

func joinStrings[T fmt.Stringer](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
