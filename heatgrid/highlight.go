package heatgrid

// RenderHighlight emits the band-outline strokes for the given mode.
//
// HighlightNone and HighlightColor produce an empty Drawing: none draws
// nothing, and color substitution happens inside RenderGrid through
// ColorFor's highlighted flag. HighlightFramebox and HighlightBoth stroke
// BoundarySegments(n, k) with the frame color and width.
//
// The caller guarantees 0 ≤ k ≤ n−1; validation (and any clamping) happens
// before rendering, never here.
func RenderHighlight(n, k int, mode HighlightMode, frame RGBA, width float64) Drawing {
	if !mode.frames() {
		return Drawing{}
	}

	segs := BoundarySegments(n, k)
	d := make(Drawing, 0, len(segs))
	for _, s := range segs {
		s.Width = width
		s.Color = frame
		d = append(d, s)
	}

	return d
}
