package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/contrast"
)

var (
	// Contrast command flags
	contrastSize    float64
	contrastBold    bool
	contrastPreview bool
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Rate the contrast of a colour pair",
	Long: `Compute the WCAG 2.0 contrast ratio of a foreground and background colour and
rate it for text and non-text content.

Colours may be hex (#rgb, #rrggbb, #rrggbbaa), rgb()/rgba() or an SVG colour
name. When the pair fails for text, better-contrast alternatives for the
foreground are suggested.

Examples:
  a11ykit contrast "#777777" white
  a11ykit contrast --size 18 "#949494" "#ffffff"
  a11ykit contrast --size 14 --bold --preview navy "rgb(240, 240, 240)"`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().Float64Var(&contrastSize, "size", 17, "font size in points")
	contrastCmd.Flags().BoolVar(&contrastBold, "bold", false, "bold text")
	contrastCmd.Flags().BoolVar(&contrastPreview, "preview", false, "show colour previews in terminal")
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := colour.ParseColour(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse foreground: %w", err)
	}
	bg, err := colour.ParseColour(args[1])
	if err != nil {
		return fmt.Errorf("failed to parse background: %w", err)
	}

	out := cmd.OutOrStdout()
	preview := contrastPreview && colour.SupportsANSIColours(out)
	return writeContrast(out, fg, bg, contrast.Font{Size: contrastSize, Bold: contrastBold}, preview)
}

func writeContrast(w io.Writer, fg, bg colour.Colour, font contrast.Font, preview bool) error {
	text := contrast.Measure(fg, bg, font)
	nonText := contrast.MeasureNonText(fg, bg)

	table := NewTable([]string{"Check", "Result"})
	table.AddRow([]string{"Foreground", describeColour(fg, preview)})
	table.AddRow([]string{"Background", describeColour(bg, preview)})
	if preview {
		table.AddRow([]string{"Sample", colour.PreviewPair(fg, bg, "Sample text", 15)})
	}
	table.AddRow([]string{"Contrast ratio", text.Score()})
	table.AddRow([]string{fmt.Sprintf("Text (%gpt%s)", font.Size, boldSuffix(font.Bold)), text.Title()})
	table.AddRow([]string{"Non-text", nonText.Title()})

	if _, err := io.WriteString(w, table.Render()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	if !text.Failed() {
		return nil
	}

	suggestions := colour.SuggestColours(fg, bg, text.Ratio)
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, "\nNo better-contrast foreground found.")
		return err
	}

	fmt.Fprintln(w, "\nSuggested foreground colours:")
	suggested := NewTable([]string{"Colour", "Ratio", "Text rating"})
	for _, s := range suggestions {
		r := contrast.Measure(s, bg, font)
		suggested.AddRow([]string{describeColour(s, preview), r.Score(), r.Title()})
	}
	_, err := io.WriteString(w, suggested.Render())
	return err
}

func describeColour(c colour.Colour, preview bool) string {
	if preview {
		return colour.FormatWithPreview(c, 2)
	}
	return c.Hex()
}

func boldSuffix(bold bool) string {
	if bold {
		return ", bold"
	}
	return ""
}
