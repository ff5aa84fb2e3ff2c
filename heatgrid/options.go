package heatgrid

import "fmt"

// ColorSpec bundles the color parameters of a render. Triples are
// (r,g,b) with each component in [0,1].
type ColorSpec struct {
	// Scheme selects grayscale intensity or fixed-hue alpha encoding.
	Scheme Scheme
	// Base is the cell color under SchemeRGB; ignored for SchemeGray.
	Base [3]float64
	// Highlight replaces Base for banded cells when the highlighting
	// mode includes color.
	Highlight [3]float64
	// Frame strokes the staircase boundary in framebox modes.
	Frame [3]float64
}

// DefaultColorSpec returns a ColorSpec with default settings:
// grayscale cells, firebrick highlight, black frame.
func DefaultColorSpec() ColorSpec {
	return ColorSpec{
		Scheme:    SchemeGray,
		Base:      [3]float64{0.27, 0.51, 0.71},
		Highlight: [3]float64{0.70, 0.13, 0.13},
		Frame:     [3]float64{0, 0, 0},
	}
}

// Style bundles the non-color presentation parameters of a render.
// It is constructed once per render call and read-only during rendering.
type Style struct {
	// XTitle and YTitle are the axis title strings.
	XTitle, YTitle string

	// XLabelRotation and YLabelRotation rotate the class labels of each
	// axis, in degrees counterclockwise.
	XLabelRotation, YLabelRotation float64

	// LabelScale, TitleScale, and ValueScale are font-scale factors for
	// class labels, axis titles, and in-cell values.
	LabelScale, TitleScale, ValueScale float64

	// LabelPad is the gap, in cell units, between the grid edge and the
	// class labels.
	LabelPad float64

	// TitleOffsetFactor positions axis titles at
	// TitleOffsetFactor·LabelPad outward from the grid edge.
	TitleOffsetFactor float64

	// Highlight selects how the diagonal band is emphasized.
	Highlight HighlightMode

	// FrameWidth is the staircase stroke width in surface points.
	FrameWidth float64

	// Percent switches cell text from raw counts to percentages of the
	// total, rendered with exactly Digits decimal places and a "%" suffix.
	Percent bool

	// Digits is the percentage rounding precision. Must be ≥ 0.
	Digits int
}

// DefaultStyle returns a Style with default settings.
func DefaultStyle() Style {
	return Style{
		XTitle:            "Predicted",
		YTitle:            "Actual",
		LabelScale:        1.0,
		TitleScale:        1.15,
		ValueScale:        0.9,
		LabelPad:          0.3,
		TitleOffsetFactor: 3.0,
		Highlight:         HighlightNone,
		FrameWidth:        2.0,
		Percent:           false,
		Digits:            1,
	}
}

// ValidateColorSpec checks the scheme tag and that every triple lies in
// [0,1]³. All triples are validated regardless of scheme so that a bad
// parameter never hides behind an unused code path.
func ValidateColorSpec(spec ColorSpec) error {
	if spec.Scheme != SchemeGray && spec.Scheme != SchemeRGB {
		return fmt.Errorf("%w: color scheme %d", ErrMode, int(spec.Scheme))
	}
	for _, t := range []struct {
		name string
		rgb  [3]float64
	}{
		{"base", spec.Base},
		{"highlight", spec.Highlight},
		{"frame", spec.Frame},
	} {
		for i, v := range t.rgb {
			if v < 0 || v > 1 {
				return fmt.Errorf("%w: %s[%d]=%v", ErrColor, t.name, i, v)
			}
		}
	}

	return nil
}

// validateStyle checks the enum and numeric fields of a Style.
func validateStyle(style Style) error {
	switch style.Highlight {
	case HighlightNone, HighlightColor, HighlightFramebox, HighlightBoth:
	default:
		return fmt.Errorf("%w: highlighting mode %d", ErrMode, int(style.Highlight))
	}
	if style.Digits < 0 {
		return fmt.Errorf("%w: got %d", ErrDigits, style.Digits)
	}

	return nil
}
