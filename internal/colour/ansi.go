package colour

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// SupportsANSIColours reports whether w is a terminal that should receive colour codes.
// NO_COLOR and TERM=dumb disable colour.
func SupportsANSIColours(w io.Writer) bool {
	if DisableColourOutput || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Preview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the colour block should be.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bgEscape(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewPair renders text in fg on bg, padded or truncated to width.
func PreviewPair(fg, bg Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	runes := []rune(text)
	displayText := text
	if len(runes) > width {
		displayText = string(runes[:width])
	} else if len(runes) < width {
		padding := (width - len(runes)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(runes)-padding)
	}

	return bgEscape(bg) + fgEscape(fg) + displayText + ansiReset
}

// FormatWithPreview formats a colour with its preview block and hex code.
func FormatWithPreview(c Colour, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex())
}

func bgEscape(c Colour) string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}

func fgEscape(c Colour) string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix)
}
