package termgrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/confgrid/confmat"
	"github.com/katalvlaran/confgrid/heatgrid"
)

// cellWidth fits a 6-character value plus one space of breathing room.
const cellWidth = 7

// Render lays out the matrix as a colored text grid with a statistics
// footer. The same validation as heatgrid.Render applies: bad color specs,
// modes, digits, or band widths fail before any output is produced.
func Render(m *confmat.Matrix, spec heatgrid.ColorSpec, style heatgrid.Style, k int) (string, error) {
	if err := heatgrid.ValidateColorSpec(spec); err != nil {
		return "", err
	}
	if style.Percent && style.Digits < 0 {
		return "", heatgrid.ErrDigits
	}
	if err := confmat.ValidateBandWidth(m.N(), k); err != nil {
		return "", err
	}

	stat, err := m.BandAccuracy(k)
	if err != nil {
		return "", err
	}

	n := m.N()
	labels := m.Labels()
	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	recolor := style.Highlight == heatgrid.HighlightColor || style.Highlight == heatgrid.HighlightBoth

	var b strings.Builder

	// Column header.
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	for j := 0; j < n; j++ {
		b.WriteString(pad(labels[j], cellWidth))
	}
	b.WriteByte('\n')

	for i := 0; i < n; i++ {
		b.WriteString(pad(labels[i], labelWidth))
		b.WriteByte(' ')
		for j := 0; j < n; j++ {
			hl := recolor && confmat.InBand(i, j, k)
			c, err := heatgrid.ColorFor(m.Count(i, j), m.Total(), spec, hl)
			if err != nil {
				return "", err
			}
			b.WriteString(cellStyle(c).Render(pad(cellValue(m, i, j, style), cellWidth)))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "band k=%d: accuracy %.4f (chance %.4f)\n", k, stat.Accuracy, stat.Expected)

	return b.String(), nil
}

// cellValue formats a cell the way the grid renderer labels it.
func cellValue(m *confmat.Matrix, i, j int, style heatgrid.Style) string {
	if !style.Percent {
		return fmt.Sprintf("%d", m.Count(i, j))
	}

	return fmt.Sprintf("%.*f%%", style.Digits, 100*m.Fraction(i, j))
}

// cellStyle builds the lipgloss style for one cell: the alpha-composited
// background and a foreground picked by luminance for contrast.
func cellStyle(c heatgrid.RGBA) lipgloss.Style {
	// Composite over white, matching how the image surface appears on a
	// white page background.
	r := c.A*c.R + (1 - c.A)
	g := c.A*c.G + (1 - c.A)
	bl := c.A*c.B + (1 - c.A)

	fg := "#000000"
	if 0.299*r+0.587*g+0.114*bl < 0.5 {
		fg = "#ffffff"
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex(r, g, bl))).
		Foreground(lipgloss.Color(fg))
}

// hex formats float components in [0,1] as a #rrggbb string.
func hex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// channel clamps and quantizes one component.
func channel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return uint8(v*255 + 0.5)
}

// pad right-pads s to width, truncating over-long labels with an ellipsis
// dot so columns stay aligned.
func pad(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}

	return s + strings.Repeat(" ", width-len(s))
}
