package plotgrid

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/confgrid/heatgrid"
)

// Padding is the margin, in grid units, added around the drawing so that
// axis labels and titles anchored outside the grid are not clipped.
const Padding = 0.9

// Plotter adapts a heatgrid.Drawing to gonum's plot.Plotter and
// plot.DataRanger. The zero value with a nil Drawing draws nothing.
type Plotter struct {
	Drawing heatgrid.Drawing
}

var (
	_ plot.Plotter    = Plotter{}
	_ plot.DataRanger = Plotter{}
)

// Plot draws every primitive in order onto the canvas, so later primitives
// paint over earlier ones exactly as the renderer sequenced them.
func (p Plotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, pr := range p.Drawing {
		switch v := pr.(type) {
		case heatgrid.FillRect:
			c.FillPolygon(v.Color.NRGBA(), []vg.Point{
				{X: trX(v.X0), Y: trY(v.Y0)},
				{X: trX(v.X1), Y: trY(v.Y0)},
				{X: trX(v.X1), Y: trY(v.Y1)},
				{X: trX(v.X0), Y: trY(v.Y1)},
			})
		case heatgrid.Segment:
			sty := draw.LineStyle{
				Color: v.Color.NRGBA(),
				Width: vg.Points(v.Width),
			}
			c.StrokeLine2(sty, trX(v.X0), trY(v.Y0), trX(v.X1), trY(v.Y1))
		case heatgrid.Text:
			c.FillText(p.textStyle(plt, v), vg.Point{X: trX(v.X), Y: trY(v.Y)}, v.S)
		}
	}
}

// textStyle derives a primitive's style from the plot's label style, so the
// drawing inherits the plot's font handler and typeface.
func (p Plotter) textStyle(plt *plot.Plot, v heatgrid.Text) text.Style {
	sty := plt.X.Label.TextStyle
	sty.Font.Size = vg.Length(float64(sty.Font.Size) * scaleOf(v))
	sty.Rotation = v.Rotation * math.Pi / 180
	sty.XAlign, sty.YAlign = align(v.Anchor)

	return sty
}

// scaleOf treats an unset Scale as 1.
func scaleOf(v heatgrid.Text) float64 {
	if v.Scale <= 0 {
		return 1
	}

	return v.Scale
}

// align maps a heatgrid anchor onto gonum text alignments.
func align(a heatgrid.Anchor) (text.XAlignment, text.YAlignment) {
	switch a {
	case heatgrid.AnchorEast:
		return text.XRight, text.YCenter
	case heatgrid.AnchorWest:
		return text.XLeft, text.YCenter
	case heatgrid.AnchorSouth:
		return text.XCenter, text.YBottom
	case heatgrid.AnchorNorth:
		return text.XCenter, text.YTop
	default:
		return text.XCenter, text.YCenter
	}
}

// DataRange reports the drawing's bounding box so the plot scales to fit.
func (p Plotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	for _, pr := range p.Drawing {
		switch v := pr.(type) {
		case heatgrid.FillRect:
			grow(v.X0, v.Y0)
			grow(v.X1, v.Y1)
		case heatgrid.Segment:
			grow(v.X0, v.Y0)
			grow(v.X1, v.Y1)
		case heatgrid.Text:
			grow(v.X, v.Y)
		}
	}
	if len(p.Drawing) == 0 {
		return 0, 1, 0, 1
	}

	return xmin, xmax, ymin, ymax
}

// New wraps a Drawing in an axis-hidden, padded, ready-to-save plot.
func New(d heatgrid.Drawing) *plot.Plot {
	p := plot.New()
	p.HideAxes()
	p.Add(Plotter{Drawing: d})

	xmin, xmax, ymin, ymax := Plotter{Drawing: d}.DataRange()
	p.X.Min, p.X.Max = xmin-Padding, xmax+Padding
	p.Y.Min, p.Y.Max = ymin-Padding, ymax+Padding

	return p
}

// Save renders the drawing to path at the given canvas size; the image
// format follows the file extension.
func Save(d heatgrid.Drawing, width, height vg.Length, path string) error {
	return New(d).Save(width, height, path)
}
