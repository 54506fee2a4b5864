package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColour is returned when a colour string cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// ParseColour parses a colour string. Supported forms:
//
//	#rgb, #rrggbb, #rrggbbaa
//	rgb(r, g, b), rgba(r, g, b, a)   channels 0-255, alpha 0-1
//	clear, transparent
//	SVG 1.1 colour names (red, navy, ...)
func ParseColour(s string) (Colour, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return Colour{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	switch {
	case value == "clear" || value == "transparent":
		return Clear, nil
	case strings.HasPrefix(value, "#"):
		return parseHex(value)
	case strings.HasPrefix(value, "rgb"):
		return parseFunctional(value)
	}

	if named, ok := colornames.Map[value]; ok {
		return FromColor(named), nil
	}

	return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
}

// MustParse is like ParseColour but panics on error. Intended for constants and tests.
func MustParse(s string) Colour {
	c, err := ParseColour(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(value string) (Colour, error) {
	alpha := 1.0
	switch len(value) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(value[7:9], 16, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: bad alpha in %q", ErrInvalidColour, value)
		}
		alpha = float64(a) / 255.0
		value = value[:7]
	default:
		return Colour{}, fmt.Errorf("%w: hex colour %q must be #rgb, #rrggbb or #rrggbbaa", ErrInvalidColour, value)
	}

	cc, err := colorful.Hex(value)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: %v", ErrInvalidColour, err)
	}
	return fromColorful(cc, alpha), nil
}

func parseFunctional(value string) (Colour, error) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, value)
	}

	name := value[:open]
	parts := strings.Split(value[open+1:len(value)-1], ",")
	switch {
	case name == "rgb" && len(parts) == 3:
	case name == "rgba" && len(parts) == 4:
	default:
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, value)
	}

	channels := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: channel %q", ErrInvalidColour, part)
		}
		channels[i] = v
	}

	alpha := 1.0
	if len(channels) == 4 {
		alpha = channels[3]
	}
	return New(channels[0]/255.0, channels[1]/255.0, channels[2]/255.0, alpha), nil
}
