package heatgrid

import "math"

// Intensity and alpha ramps. The square root compresses the visual range
// so low counts remain distinguishable; a linear ramp over-darkens sparse
// cells.
const (
	grayBase  = 0.9 // near-white for count 0
	graySpan  = 0.8 // darkens toward 0.1 at count == total
	alphaBase = 0.1 // faint for count 0
	alphaSpan = 0.8 // opaque-ish toward 0.9 at count == total
)

// ColorFor maps a cell count to its fill color.
//
// SchemeGray: intensity v = 0.9 − 0.8·√(count/total), equal in R, G, B,
// fully opaque. SchemeRGB: alpha = 0.1 + 0.8·√(count/total) over the base
// triple, or the highlight triple when highlighted is true (the cell lies
// in the active band and the mode recolors it).
//
// A non-positive total is a caller precondition violation and returns
// ErrTotal rather than a silent default; an unknown scheme returns ErrMode.
func ColorFor(count, total int, spec ColorSpec, highlighted bool) (RGBA, error) {
	if total <= 0 {
		return RGBA{}, ErrTotal
	}

	r := math.Sqrt(float64(count) / float64(total))
	switch spec.Scheme {
	case SchemeGray:
		v := grayBase - graySpan*r

		return RGBA{R: v, G: v, B: v, A: 1}, nil
	case SchemeRGB:
		rgb := spec.Base
		if highlighted {
			rgb = spec.Highlight
		}

		return RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alphaBase + alphaSpan*r}, nil
	default:
		return RGBA{}, ErrMode
	}
}
