package heatgrid

// BoundarySegments outlines the diagonal band {(i,j): |i−j| ≤ k} on an
// n×n grid with unit cells, in plot coordinates (row 0 at the top, so
// cell (i,j) spans (j, n−i−1)–(j+1, n−i)).
//
// The boundary is a staircase polygon symmetric about the main diagonal.
// Derivation from the membership predicate: in row r the rightmost banded
// column is min(r+k, n−1), so the upper-right edge steps down by one cell
// at every column i in k+1..n−1; the lower-left edge is its mirror under
// transposition (|i−j| ≤ k ⇔ |j−i| ≤ k), which in plot coordinates is the
// map (x,y) ↦ (n−y, n−x). Each step i therefore contributes four unit
// segments, emitted in order:
//
//	upper vertical    (i, n−i+k+1)–(i, n−i+k)
//	upper horizontal  (i, n−i+k)–(i+1, n−i+k)
//	lower horizontal  (i−k−1, n−i)–(i−k, n−i)
//	lower vertical    (i−k, n−i)–(i−k, n−i−1)
//
// Four final segments close the outer frame: top (0,n)–(k+1,n), left
// (0,n)–(0,n−k−1), bottom (n−k−1,0)–(n,0), right (n,0)–(n,k+1).
//
// Degenerate cases: k = n−1 skips the step loop entirely (the band covers
// the whole matrix) and yields exactly the four frame segments; k = 0
// traces the main diagonal tightly.
//
// Segments carry geometry only (zero Width and Color); RenderHighlight
// styles them. The caller guarantees 0 ≤ k ≤ n−1 — clamping is the
// validation stage's job, never this component's.
func BoundarySegments(n, k int) []Segment {
	steps := n - 1 - k
	if steps < 0 {
		steps = 0
	}
	segs := make([]Segment, 0, 4*steps+4)

	for i := k + 1; i <= n-1; i++ {
		fi, fk, fn := float64(i), float64(k), float64(n)
		// Upper-right edge: step down at column i, then run to column i+1.
		segs = append(segs,
			Segment{X0: fi, Y0: fn - fi + fk + 1, X1: fi, Y1: fn - fi + fk},
			Segment{X0: fi, Y0: fn - fi + fk, X1: fi + 1, Y1: fn - fi + fk},
		)
		// Lower-left edge: transpose mirror of the two segments above.
		segs = append(segs,
			Segment{X0: fi - fk - 1, Y0: fn - fi, X1: fi - fk, Y1: fn - fi},
			Segment{X0: fi - fk, Y0: fn - fi, X1: fi - fk, Y1: fn - fi - 1},
		)
	}

	fn, fk := float64(n), float64(k)
	segs = append(segs,
		Segment{X0: 0, Y0: fn, X1: fk + 1, Y1: fn},     // top
		Segment{X0: 0, Y0: fn, X1: 0, Y1: fn - fk - 1}, // left
		Segment{X0: fn - fk - 1, Y0: 0, X1: fn, Y1: 0}, // bottom
		Segment{X0: fn, Y0: 0, X1: fn, Y1: fk + 1},     // right
	)

	return segs
}
