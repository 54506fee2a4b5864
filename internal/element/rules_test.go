package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/contrast"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// compliant returns a snapshot of the given class with no warnings.
func compliant(class Class) Snapshot {
	return Snapshot{
		Class:                class,
		Frame:                Frame{Width: 100, Height: 44},
		Enabled:              true,
		Interactive:          true,
		AccessibilityElement: true,
		Label:                "Continue",
		Hint:                 "Moves to the next step",
		Value:                "Step 1 of 3",
		Traits:               []string{"button"},
		Font:                 Font{Name: "SF Pro", Size: 17},
		DynamicType:          DynamicType{Supported: true, Category: "large"},
		Colours: Colours{
			Foreground: colour.Black,
			Background: colour.White,
		},
	}
}

func passing() contrast.Result {
	return contrast.Result{Ratio: 21, Rating: contrast.AAA}
}

func failing(ratio float64) contrast.Result {
	return contrast.Result{Ratio: ratio, Rating: contrast.RateText(ratio, 12, false)}
}

func TestValidateCompliant(t *testing.T) {
	for _, class := range AllClasses() {
		t.Run(class.String(), func(t *testing.T) {
			assert.Empty(t, Validate(compliant(class), passing()))
		})
	}
}

func TestMinimumSize(t *testing.T) {
	tests := []struct {
		name        string
		frame       Frame
		interactive bool
		want        bool
	}{
		{name: "interactive 40x40", frame: Frame{Width: 40, Height: 40}, interactive: true, want: true},
		{name: "interactive 44x44", frame: Frame{Width: 44, Height: 44}, interactive: true, want: false},
		{name: "interactive narrow", frame: Frame{Width: 20, Height: 60}, interactive: true, want: true},
		{name: "non-interactive 10x10", frame: Frame{Width: 10, Height: 10}, interactive: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := compliant(ClassButton)
			s.Frame = tt.frame
			s.Interactive = tt.interactive

			assert.Equal(t, tt.want, HasMinimumSizeWarning(s))
			if tt.want {
				assert.Contains(t, Validate(s, passing()), warning.MinimumSize)
				assert.Contains(t, MinimumSizeTitle(s), "smaller than 44x44")
			} else {
				assert.NotContains(t, Validate(s, passing()), warning.MinimumSize)
			}
		})
	}
}

func TestMissingMetadataWarningsAreIndependent(t *testing.T) {
	s := compliant(ClassLabel)
	s.Label = ""
	s.Hint = "  "
	s.Value = ""
	s.Traits = []string{"none"}

	got := Validate(s, passing())
	assert.Equal(t, []warning.Type{
		warning.HintMissing,
		warning.LabelMissing,
		warning.TraitMissing,
		warning.ValueMissing,
	}, got)
}

func TestMissingAccessibilityFlag(t *testing.T) {
	s := compliant(ClassButton)
	s.AccessibilityElement = false
	assert.Contains(t, Validate(s, passing()), warning.Disabled)

	s.Interactive = false
	s.Frame = Frame{Width: 10, Height: 10}
	assert.NotContains(t, Validate(s, passing()), warning.Disabled)

	view := compliant(ClassView)
	view.AccessibilityElement = false
	assert.NotContains(t, Validate(view, passing()), warning.Disabled, "plain container views are not eligible")
}

func TestTextContrast(t *testing.T) {
	for _, class := range []Class{ClassButton, ClassLabel, ClassTextField, ClassTextView} {
		t.Run(class.String(), func(t *testing.T) {
			assert.Contains(t, Validate(compliant(class), failing(2.0)), warning.ContrastForeground)
		})
	}

	na := contrast.Result{Ratio: 1, Rating: contrast.NotApplicable}
	assert.NotContains(t, Validate(compliant(ClassLabel), na), warning.ContrastForeground)
}

func TestContrastExemptClasses(t *testing.T) {
	for _, class := range []Class{ClassSwitch, ClassSlider, ClassView} {
		t.Run(class.String(), func(t *testing.T) {
			assert.Empty(t, Validate(compliant(class), failing(1.5)))
		})
	}
}

func TestImageView(t *testing.T) {
	s := compliant(ClassImageView)
	s.ImageName = "icon_settings"
	s.Label = "icon_settings"

	got := Validate(s, failing(1.5))
	assert.Equal(t, []warning.Type{warning.LabelUnset}, got, "plain images skip tint contrast")

	s.TemplateImage = true
	got = Validate(s, failing(1.5))
	assert.Equal(t, []warning.Type{warning.ContrastForeground, warning.LabelUnset}, got)
}

func TestDynamicText(t *testing.T) {
	for _, class := range []Class{ClassTextField, ClassTextView} {
		s := compliant(class)
		s.DynamicType.Supported = false
		assert.Contains(t, Validate(s, passing()), warning.DynamicText, class.String())
	}

	label := compliant(ClassLabel)
	label.DynamicType.Supported = false
	assert.NotContains(t, Validate(label, passing()), warning.DynamicText)
}

func TestBackgroundContrast(t *testing.T) {
	parent := colour.MustParse("#fafafa")

	s := compliant(ClassButton)
	s.Colours.Parent = &parent
	assert.Contains(t, Validate(s, passing()), warning.ContrastBackground)

	s.Colours.Background = colour.MustParse("#0055cc")
	assert.NotContains(t, Validate(s, passing()), warning.ContrastBackground)

	field := compliant(ClassTextField)
	field.Colours.Parent = &parent
	assert.Contains(t, Validate(field, passing()), warning.ContrastBackground)

	label := compliant(ClassLabel)
	label.Colours.Parent = &parent
	assert.NotContains(t, Validate(label, passing()), warning.ContrastBackground)
}

func TestEndToEndButton(t *testing.T) {
	s := compliant(ClassButton)
	s.Frame = Frame{Width: 30, Height: 30}
	s.Label = ""

	got := Validate(s, failing(2.0))
	require.Equal(t, []warning.Type{
		warning.ContrastForeground,
		warning.LabelMissing,
		warning.MinimumSize,
	}, got)
	assert.Equal(t, warning.LevelHigh, warning.HighestLevelOf(got))
}

func TestUnknownClassFallsBackToBaseRules(t *testing.T) {
	s := compliant(Class(42))
	s.Label = ""
	assert.Equal(t, []warning.Type{warning.LabelMissing}, Validate(s, failing(1.2)))
}

func TestMeasureContrast(t *testing.T) {
	label := compliant(ClassLabel)
	label.Font = Font{Size: 24}
	label.Colours.Foreground = colour.MustParse("#949494")
	result := MeasureContrast(label)
	assert.True(t, result.IsLargeText)
	assert.Equal(t, contrast.AA, result.Rating)

	image := compliant(ClassImageView)
	image.Colours.Foreground = colour.MustParse("#949494")
	assert.Equal(t, contrast.AA, MeasureContrast(image).Rating)

	_, ok := MeasureBackgroundContrast(label)
	assert.False(t, ok)
}

func TestMeasureContrastSliderNotRated(t *testing.T) {
	slider := compliant(ClassSlider)
	slider.Colours.Foreground = colour.MustParse("#b7b7b7")

	result := MeasureContrast(slider)
	assert.InDelta(t, 2.0, result.Ratio, 0.05)
	assert.Equal(t, contrast.NotApplicable, result.Rating)
	assert.False(t, result.Failed())
	assert.Empty(t, Validate(slider, result))
}

func TestParseClass(t *testing.T) {
	for _, class := range AllClasses() {
		parsed, err := ParseClass(class.String())
		require.NoError(t, err)
		assert.Equal(t, class, parsed)

		parsed, err = ParseClass(class.DisplayName())
		require.NoError(t, err)
		assert.Equal(t, class, parsed)
	}

	_, err := ParseClass("UITableView")
	assert.ErrorIs(t, err, ErrUnknownClass)
}
