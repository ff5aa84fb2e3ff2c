package heatgrid_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confgrid/confmat"
	"github.com/katalvlaran/confgrid/heatgrid"
)

// gridMatrix builds the 3×3 reference matrix (total 55).
func gridMatrix(t *testing.T) *confmat.Matrix {
	t.Helper()
	m, err := confmat.New([][]int{
		{10, 2, 1},
		{2, 15, 3},
		{4, 0, 18},
	}, confmat.DefaultOptions())
	require.NoError(t, err)

	return m
}

// TestRenderGrid_Layout verifies one rectangle and one centered label per
// cell, in row-major order, at flipped plot coordinates.
func TestRenderGrid_Layout(t *testing.T) {
	m := gridMatrix(t)
	d, err := heatgrid.RenderGrid(m, heatgrid.DefaultColorSpec(), heatgrid.DefaultStyle(), 0)
	require.NoError(t, err)
	require.Len(t, d, 2*3*3)

	// Cell (0,0) renders at the top-left: x [0,1], y [2,3].
	rect, ok := d[0].(heatgrid.FillRect)
	require.True(t, ok)
	require.Equal(t, 0.0, rect.X0)
	require.Equal(t, 2.0, rect.Y0)
	require.Equal(t, 1.0, rect.X1)
	require.Equal(t, 3.0, rect.Y1)

	txt, ok := d[1].(heatgrid.Text)
	require.True(t, ok)
	require.Equal(t, "10", txt.S)
	require.Equal(t, 0.5, txt.X)
	require.Equal(t, 2.5, txt.Y)
	require.Equal(t, heatgrid.AnchorCenter, txt.Anchor)

	// Cell (2,1) is the 8th cell (row-major): value 0, x [1,2], y [0,1].
	rect, ok = d[2*7].(heatgrid.FillRect)
	require.True(t, ok)
	require.Equal(t, 1.0, rect.X0)
	require.Equal(t, 0.0, rect.Y0)
	txt, ok = d[2*7+1].(heatgrid.Text)
	require.True(t, ok)
	require.Equal(t, "0", txt.S)
}

// TestRenderGrid_PercentRoundTrip renders percentage labels, parses them
// back, and reconstructs each count within the rounding tolerance.
func TestRenderGrid_PercentRoundTrip(t *testing.T) {
	m := gridMatrix(t)
	for _, digits := range []int{0, 1, 2, 4} {
		style := heatgrid.DefaultStyle()
		style.Percent = true
		style.Digits = digits

		d, err := heatgrid.RenderGrid(m, heatgrid.DefaultColorSpec(), style, 0)
		require.NoError(t, err)

		cell := 0
		for _, p := range d {
			txt, ok := p.(heatgrid.Text)
			if !ok {
				continue
			}
			i, j := cell/3, cell%3
			cell++

			require.True(t, strings.HasSuffix(txt.S, "%"), "label %q must carry %% suffix", txt.S)
			require.Equal(t, digits, decimalsOf(txt.S), "label %q must show exactly %d decimals", txt.S, digits)

			pct, err := strconv.ParseFloat(strings.TrimSuffix(txt.S, "%"), 64)
			require.NoError(t, err)
			back := pct * float64(m.Total()) / 100
			// Half a unit in the last shown decimal, converted to counts.
			tol := 0.5 * float64(m.Total()) / 100
			for q := 0; q < digits; q++ {
				tol /= 10
			}
			require.InDelta(t, float64(m.Count(i, j)), back, tol+1e-9,
				"cell (%d,%d) label %q", i, j, txt.S)
		}
		require.Equal(t, 9, cell)
	}
}

// decimalsOf counts the decimal places in a "12.34%" style label.
func decimalsOf(s string) int {
	s = strings.TrimSuffix(s, "%")
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}

	return len(s) - dot - 1
}

// TestRenderGrid_HighlightColor verifies banded cells switch to the
// highlight triple under a recoloring mode, and only those cells.
func TestRenderGrid_HighlightColor(t *testing.T) {
	m := gridMatrix(t)
	spec := heatgrid.DefaultColorSpec()
	spec.Scheme = heatgrid.SchemeRGB
	spec.Base = [3]float64{0, 0, 1}
	spec.Highlight = [3]float64{1, 0, 0}
	style := heatgrid.DefaultStyle()
	style.Highlight = heatgrid.HighlightColor

	d, err := heatgrid.RenderGrid(m, spec, style, 0)
	require.NoError(t, err)

	cell := 0
	for _, p := range d {
		rect, ok := p.(heatgrid.FillRect)
		if !ok {
			continue
		}
		i, j := cell/3, cell%3
		cell++
		if i == j {
			require.Equal(t, 1.0, rect.Color.R, "diagonal cell (%d,%d) must use highlight", i, j)
		} else {
			require.Equal(t, 1.0, rect.Color.B, "off-band cell (%d,%d) must use base", i, j)
		}
	}
}

// TestRenderGrid_NoRecolorUnderFramebox verifies framebox mode leaves cell
// colors alone; only the boundary strokes mark the band.
func TestRenderGrid_NoRecolorUnderFramebox(t *testing.T) {
	m := gridMatrix(t)
	spec := heatgrid.DefaultColorSpec()
	spec.Scheme = heatgrid.SchemeRGB
	spec.Base = [3]float64{0, 0, 1}
	spec.Highlight = [3]float64{1, 0, 0}
	style := heatgrid.DefaultStyle()
	style.Highlight = heatgrid.HighlightFramebox

	d, err := heatgrid.RenderGrid(m, spec, style, 0)
	require.NoError(t, err)
	for _, p := range d {
		if rect, ok := p.(heatgrid.FillRect); ok {
			require.Equal(t, 1.0, rect.Color.B)
			require.Equal(t, 0.0, rect.Color.R)
		}
	}
}
