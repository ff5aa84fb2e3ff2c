// Package termgrid renders a confusion heat-grid as ANSI terminal output.
//
// What:
//
//   - Render produces a lipgloss-styled text block: one fixed-width cell
//     per matrix entry, background-colored through the same ColorFor ramp
//     the image surface uses (alpha composited over white), class labels
//     on the left and top, and a banded-accuracy footer.
//
// Why:
//
//	A quick look at a confusion table during training runs, without
//	writing an image file. Colors degrade gracefully: lipgloss drops the
//	ANSI sequences on dumb terminals and the plain grid remains readable.
package termgrid
