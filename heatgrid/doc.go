// Package heatgrid renders a confusion matrix as a colored heat-grid of
// drawing primitives, with optional highlighting of a diagonal band.
//
// What:
//
//   - ColorFor encodes a cell count as a color: grayscale intensity or a
//     fixed-hue alpha ramp, both √-compressed so sparse cells stay visible.
//   - BoundarySegments computes the staircase polygon outlining the band
//     {(i,j): |i−j| ≤ k} on an n×n grid.
//   - RenderGrid, RenderHighlight, and RenderAxes each emit an ordered
//     Drawing of primitives (filled rectangles, text, line segments).
//   - Render is the orchestrator: it validates every input eagerly, then
//     composes grid → highlight → axes into a single Drawing.
//
// Why:
//
//   - The core stays pure: it owns no canvas, file, or global plotting
//     state. A surface package (plotgrid, termgrid, or the caller's own)
//     consumes the Drawing.
//   - Eager validation means a render either fails before the first
//     primitive or completes; there are no partial drawings.
//
// Coordinates:
//
//	Cell (row i, col j) of the matrix occupies the unit square
//	(j, n−i−1)–(j+1, n−i): row 0 renders at the top, columns grow to the
//	right, matching how a confusion table is read.
//
// Complexity: every operation is O(n²) in the matrix dimension and
// terminates deterministically; renders share no mutable state and may run
// concurrently.
//
// Errors:
//
//   - ErrColor: a color component outside [0,1].
//   - ErrMode: an unrecognized highlighting mode or color scheme.
//   - ErrDigits: negative percentage precision.
//   - ErrTotal: a non-positive total reached the color mapper.
//   - confmat.ErrBandWidth: band half-width outside [0, n−1].
package heatgrid
