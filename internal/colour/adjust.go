package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// BetterContrastTarget is the ratio FindBetterContrastColour aims for (WCAG AA normal text).
	BetterContrastTarget = 4.5

	// adjustStep is the brightness change applied per search step.
	adjustStep = 0.05

	// maxAdjustSteps bounds the search in each direction.
	maxAdjustSteps = 20

	// analogousSpread is the widest hue rotation Analogous applies, in degrees.
	analogousSpread = 30.0

	// maxSuggestions is the number of colours SuggestColours returns at most.
	maxSuggestions = 3
)

// Lighten raises the HSV brightness by amount (clamped to [0,1]).
// Brightness beyond 1 is spent on desaturation so that any colour can reach white.
func Lighten(c Colour, amount float64) Colour {
	amount = clampUnit(amount)
	h, s, v := c.toColorful().Hsv()

	v += amount
	if v > 1 {
		s = math.Max(0, s-(v-1))
		v = 1
	}

	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

// Darken lowers the HSV brightness by amount (clamped to [0,1]).
func Darken(c Colour, amount float64) Colour {
	amount = clampUnit(amount)
	h, s, v := c.toColorful().Hsv()
	return fromColorful(colorful.Hsv(h, s, math.Max(0, v-amount)), c.A)
}

// Analogous rotates the hue by amount*30° (amount clamped to [0,1]).
// Greys have no hue and are returned unchanged.
func Analogous(c Colour, amount float64) Colour {
	amount = clampUnit(amount)
	h, s, v := c.toColorful().Hsv()
	h = math.Mod(h+amount*analogousSpread, 360)
	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

// FindBetterContrastColour walks fg lighter and darker in bounded steps looking for a
// colour whose contrast with bg reaches BetterContrastTarget.
//
// The direction that reaches the target in fewer steps wins; when neither does, the
// candidate with the highest ratio wins. The returned ratio is never below previous:
// if nothing beats it, fg and previous are returned unchanged.
func FindBetterContrastColour(fg, bg Colour, previous float64) (Colour, float64) {
	lighter := walkContrast(fg, bg, Lighten)
	darker := walkContrast(fg, bg, Darken)

	best := lighter
	switch {
	case lighter.reached && darker.reached:
		if darker.steps < lighter.steps {
			best = darker
		}
	case darker.reached:
		best = darker
	case !lighter.reached && darker.ratio > lighter.ratio:
		best = darker
	}

	if best.ratio <= previous {
		return fg, previous
	}
	return best.colour, best.ratio
}

// SuggestColours returns up to three replacement colours for fg that contrast better with
// bg than previous: the FindBetterContrastColour result followed by its analogous
// neighbours. Duplicates and candidates that do not beat previous are dropped.
func SuggestColours(fg, bg Colour, previous float64) []Colour {
	better, ratio := FindBetterContrastColour(fg, bg, previous)
	if ratio <= previous {
		return nil
	}

	candidates := []Colour{
		better,
		Analogous(better, 0.5),
		Analogous(better, 1.0),
	}

	suggestions := make([]Colour, 0, maxSuggestions)
	for _, candidate := range candidates {
		if ContrastRatio(candidate, bg) <= previous {
			continue
		}
		if containsColour(suggestions, candidate) {
			continue
		}
		suggestions = append(suggestions, candidate)
	}
	return suggestions
}

// contrastWalk is the outcome of searching in one direction.
type contrastWalk struct {
	colour  Colour
	ratio   float64
	steps   int
	reached bool
}

// walkContrast applies step repeatedly, keeping the best candidate seen.
// Stops early when the target is reached or the colour no longer changes.
func walkContrast(fg, bg Colour, step func(Colour, float64) Colour) contrastWalk {
	walk := contrastWalk{colour: fg, ratio: ContrastRatio(fg, bg)}
	if walk.ratio >= BetterContrastTarget {
		walk.reached = true
		return walk
	}

	current := fg
	for i := 1; i <= maxAdjustSteps; i++ {
		next := step(current, adjustStep)
		if next.Equal(current) {
			break
		}
		current = next

		ratio := ContrastRatio(current, bg)
		if ratio > walk.ratio {
			walk.colour = current
			walk.ratio = ratio
			walk.steps = i
		}
		if walk.ratio >= BetterContrastTarget {
			walk.reached = true
			break
		}
	}
	return walk
}

func containsColour(colours []Colour, c Colour) bool {
	for _, existing := range colours {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}
