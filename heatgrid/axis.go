package heatgrid

// RenderAxes positions the class labels and axis titles around the grid.
//
// Row label i sits left of its row, anchored east at x = −LabelPad;
// column label j sits above its column, anchored south at y = n+LabelPad.
// Per-axis rotation and the label font scale come from style. The two
// axis titles are offset outward by TitleOffsetFactor·LabelPad: XTitle
// centered above the column labels, YTitle centered left of the row
// labels and rotated 90°.
func RenderAxes(labels []string, style Style) Drawing {
	n := len(labels)
	fn := float64(n)
	d := make(Drawing, 0, 2*n+2)

	for i, lab := range labels {
		d = append(d, Text{
			X:        -style.LabelPad,
			Y:        fn - float64(i) - 0.5,
			S:        lab,
			Rotation: style.YLabelRotation,
			Scale:    style.LabelScale,
			Anchor:   AnchorEast,
		})
	}
	for j, lab := range labels {
		d = append(d, Text{
			X:        float64(j) + 0.5,
			Y:        fn + style.LabelPad,
			S:        lab,
			Rotation: style.XLabelRotation,
			Scale:    style.LabelScale,
			Anchor:   AnchorSouth,
		})
	}

	off := style.TitleOffsetFactor * style.LabelPad
	if style.XTitle != "" {
		d = append(d, Text{
			X:      fn / 2,
			Y:      fn + off,
			S:      style.XTitle,
			Scale:  style.TitleScale,
			Anchor: AnchorSouth,
		})
	}
	if style.YTitle != "" {
		d = append(d, Text{
			X:        -off,
			Y:        fn / 2,
			S:        style.YTitle,
			Rotation: 90,
			Scale:    style.TitleScale,
			Anchor:   AnchorSouth,
		})
	}

	return d
}
