package heatgrid

import (
	"github.com/katalvlaran/confgrid/confmat"
)

// Render composes the full confusion chart: cell fills and value labels,
// then the band highlight, then the axis labels and titles, as one ordered
// Drawing.
//
// Every input is validated eagerly — color spec, highlighting mode,
// percentage digits, and band half-width — so a render either fails before
// the first primitive or completes; there are no partial drawings. The
// matrix carries its own invariants from confmat.New.
//
// k is the band half-width in [0, n−1]. It participates even under
// HighlightNone (where it is simply unused by the output) so that one
// validated parameter set can serve both Render and Matrix.BandAccuracy.
func Render(m *confmat.Matrix, spec ColorSpec, style Style, k int) (Drawing, error) {
	if err := ValidateColorSpec(spec); err != nil {
		return nil, err
	}
	if err := validateStyle(style); err != nil {
		return nil, err
	}
	if err := confmat.ValidateBandWidth(m.N(), k); err != nil {
		return nil, err
	}

	grid, err := RenderGrid(m, spec, style, k)
	if err != nil {
		return nil, err
	}

	frame := RGBA{R: spec.Frame[0], G: spec.Frame[1], B: spec.Frame[2], A: 1}
	hl := RenderHighlight(m.N(), k, style.Highlight, frame, style.FrameWidth)
	axes := RenderAxes(m.Labels(), style)

	d := make(Drawing, 0, len(grid)+len(hl)+len(axes))
	d = append(d, grid...)
	d = append(d, hl...)
	d = append(d, axes...)

	return d, nil
}
