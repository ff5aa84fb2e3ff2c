// Package heatgrid: drawing primitives, enums, and sentinel errors.
package heatgrid

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Sentinel errors for rendering operations. Matched via errors.Is.
var (
	// ErrColor indicates a color component outside [0,1].
	ErrColor = errors.New("heatgrid: color component out of [0,1]")

	// ErrMode indicates an unrecognized highlighting mode or color scheme.
	ErrMode = errors.New("heatgrid: unknown mode")

	// ErrDigits indicates a negative percentage-rounding precision.
	ErrDigits = errors.New("heatgrid: percent digits must be non-negative")

	// ErrTotal indicates a non-positive total count reached the color
	// mapper; color encoding divides by the total and is undefined there.
	ErrTotal = errors.New("heatgrid: total count must be positive")
)

// Scheme selects the cell color encoding.
type Scheme int

const (
	// SchemeGray encodes counts as grayscale intensity, fully opaque.
	SchemeGray Scheme = iota
	// SchemeRGB encodes counts as opacity over a fixed base color.
	SchemeRGB
)

// String returns the scheme's CLI-facing name.
func (s Scheme) String() string {
	switch s {
	case SchemeGray:
		return "gray"
	case SchemeRGB:
		return "rgb"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps a scheme name to its Scheme, or ErrMode.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "gray", "grey", "grayscale":
		return SchemeGray, nil
	case "rgb", "color":
		return SchemeRGB, nil
	default:
		return 0, fmt.Errorf("%w: color scheme %q", ErrMode, s)
	}
}

// HighlightMode selects how the diagonal band is emphasized.
type HighlightMode int

const (
	// HighlightNone leaves the band unmarked.
	HighlightNone HighlightMode = iota
	// HighlightColor recolors banded cells with the highlight color.
	HighlightColor
	// HighlightFramebox outlines the band with its staircase boundary.
	HighlightFramebox
	// HighlightBoth applies color and framebox together.
	HighlightBoth
)

// String returns the mode's CLI-facing name.
func (h HighlightMode) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightColor:
		return "color"
	case HighlightFramebox:
		return "framebox"
	case HighlightBoth:
		return "both"
	default:
		return fmt.Sprintf("HighlightMode(%d)", int(h))
	}
}

// ParseHighlightMode maps a mode name to its HighlightMode, or ErrMode.
func ParseHighlightMode(s string) (HighlightMode, error) {
	switch s {
	case "none":
		return HighlightNone, nil
	case "color":
		return HighlightColor, nil
	case "framebox":
		return HighlightFramebox, nil
	case "both":
		return HighlightBoth, nil
	default:
		return 0, fmt.Errorf("%w: highlighting mode %q", ErrMode, s)
	}
}

// colors reports whether the mode recolors banded cells.
func (h HighlightMode) colors() bool {
	return h == HighlightColor || h == HighlightBoth
}

// frames reports whether the mode draws the staircase boundary.
func (h HighlightMode) frames() bool {
	return h == HighlightFramebox || h == HighlightBoth
}

// Anchor positions a Text primitive relative to its (X,Y) point.
type Anchor int

const (
	// AnchorCenter centers the text on the point.
	AnchorCenter Anchor = iota
	// AnchorEast places the text left of the point (right-aligned).
	AnchorEast
	// AnchorWest places the text right of the point (left-aligned).
	AnchorWest
	// AnchorSouth places the text above the point.
	AnchorSouth
	// AnchorNorth places the text below the point.
	AnchorNorth
)

// RGBA is a color with float components in [0,1], alpha non-premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// NRGBA converts to the 8-bit image/color representation used by surfaces.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(255 * c.R)),
		G: uint8(math.Round(255 * c.G)),
		B: uint8(math.Round(255 * c.B)),
		A: uint8(math.Round(255 * c.A)),
	}
}

// Primitive is one draw operation in a Drawing. The closed set of
// implementations is FillRect, Text, and Segment; surfaces dispatch by
// type switch.
type Primitive interface {
	isPrimitive()
}

// FillRect is an axis-aligned filled rectangle spanning (X0,Y0)–(X1,Y1).
type FillRect struct {
	X0, Y0, X1, Y1 float64
	Color          RGBA
}

// Text is a label drawn at (X,Y), rotated by Rotation degrees
// counterclockwise and scaled by Scale relative to the surface's base
// font size, positioned per Anchor.
type Text struct {
	X, Y     float64
	S        string
	Rotation float64
	Scale    float64
	Anchor   Anchor
}

// Segment is a straight stroke from (X0,Y0) to (X1,Y1). Width is in
// surface points; BoundarySegments emits pure geometry with zero Width
// and Color, which RenderHighlight then styles.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          RGBA
}

func (FillRect) isPrimitive() {}
func (Text) isPrimitive()     {}
func (Segment) isPrimitive()  {}

// Drawing is the ordered sequence of primitives produced by the renderers.
// It is a plain value owned by the caller.
type Drawing []Primitive
