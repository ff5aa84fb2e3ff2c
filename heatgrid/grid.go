package heatgrid

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/confgrid/confmat"
)

// RenderGrid emits, for each cell (i,j) of the matrix in row-major order,
// one filled unit rectangle at (j, n−i−1)–(j+1, n−i) colored via ColorFor,
// followed by one centered value label: the raw count, or, when
// style.Percent is set, 100·count/total rendered with exactly style.Digits
// decimal places and a trailing "%" (fmt rounding; the display precision
// is visual only).
//
// Cells inside the band of half-width k are passed to ColorFor as
// highlighted when the highlighting mode recolors (color or both).
// Inputs are assumed validated; Render is the validating entry point.
func RenderGrid(m *confmat.Matrix, spec ColorSpec, style Style, k int) (Drawing, error) {
	n := m.N()
	d := make(Drawing, 0, 2*n*n)

	recolor := style.Highlight.colors()
	for i := 0; i < n; i++ {
		y0, y1 := float64(n-i-1), float64(n-i)
		for j := 0; j < n; j++ {
			hl := recolor && confmat.InBand(i, j, k)
			c, err := ColorFor(m.Count(i, j), m.Total(), spec, hl)
			if err != nil {
				return nil, err
			}
			x0 := float64(j)
			d = append(d,
				FillRect{X0: x0, Y0: y0, X1: x0 + 1, Y1: y1, Color: c},
				Text{
					X:      x0 + 0.5,
					Y:      y0 + 0.5,
					S:      cellText(m, i, j, style),
					Scale:  style.ValueScale,
					Anchor: AnchorCenter,
				},
			)
		}
	}

	return d, nil
}

// cellText formats one cell's value label.
func cellText(m *confmat.Matrix, i, j int, style Style) string {
	if !style.Percent {
		return strconv.Itoa(m.Count(i, j))
	}

	return fmt.Sprintf("%.*f%%", style.Digits, 100*m.Fraction(i, j))
}
