package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/library"
)

var (
	// Colours command flags
	coloursPreview   bool
	coloursTolerance float64
)

// coloursCmd represents the colours command
var coloursCmd = &cobra.Command{
	Use:   "colours [colour...]",
	Short: "List approved colours or check colours against them",
	Long: `Without arguments, list the approved colours from the configuration.

With arguments, check each colour against the approved colours and report the
matching entry. Matching is exact unless a tolerance is configured
(colour_tolerance, A11YKIT_COLOUR_TOLERANCE or --tolerance).

Examples:
  a11ykit colours
  a11ykit colours "#c8102e" white
  a11ykit colours --tolerance 0.01 "rgb(201, 16, 46)"`,
	RunE: runColours,
}

func init() {
	coloursCmd.Flags().BoolVar(&coloursPreview, "preview", false, "show colour previews in terminal")
	coloursCmd.Flags().Float64Var(&coloursTolerance, "tolerance", -1, "per-channel match tolerance in [0,1] (default: from config)")
}

// runColours executes the colours command.
func runColours(cmd *cobra.Command, args []string) error {
	lib := appConfig.Library()
	tolerance := appConfig.ColourTolerance
	if coloursTolerance >= 0 {
		tolerance = coloursTolerance
	}

	out := cmd.OutOrStdout()
	preview := coloursPreview && colour.SupportsANSIColours(out)

	if len(args) == 0 {
		return writeApprovedColours(out, lib, preview)
	}

	colours := make([]colour.Colour, 0, len(args))
	for _, arg := range args {
		c, err := colour.ParseColour(arg)
		if err != nil {
			return fmt.Errorf("failed to parse colour: %w", err)
		}
		colours = append(colours, c)
	}
	return writeColourChecks(out, lib, colours, tolerance, preview)
}

func writeApprovedColours(w io.Writer, lib *library.Library, preview bool) error {
	defaults := lib.Defaults()
	if len(defaults) == 0 {
		_, err := fmt.Fprintln(w, "No approved colours configured.")
		return err
	}

	table := NewTable([]string{"Colour", "Title", "RGB"})
	for _, s := range defaults {
		table.AddRow([]string{describeColour(s.Colour, preview), s.Title, s.Colour.RGBString()})
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

func writeColourChecks(w io.Writer, lib *library.Library, colours []colour.Colour, tolerance float64, preview bool) error {
	table := NewTable([]string{"Colour", "Approved", "Match"})
	for _, c := range colours {
		approved, match := "no", ""
		if swatch, ok := lib.MatchDefault(c, tolerance); ok {
			approved = "yes"
			match = fmt.Sprintf("%s (%s)", swatch.Title, swatch.Colour.Hex())
		} else {
			lib.AddSuggestedColour(c, c.Hex())
		}
		table.AddRow([]string{describeColour(c, preview), approved, match})
	}
	if _, err := io.WriteString(w, table.Render()); err != nil {
		return err
	}

	if suggested := lib.Suggested(); len(suggested) > 0 {
		logger.Info("colours not in the approved list", "count", len(suggested))
	}
	return nil
}
