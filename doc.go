// Package confgrid renders square classification-confusion matrices as
// colored heat-grids with diagonal-band highlighting, and computes the
// matching tolerance-banded accuracy statistics.
//
// 🚀 What is confgrid?
//
//	A small, deterministic library that brings together:
//		• Data model: immutable, validated confusion matrices with class labels
//		• Color encoding: grayscale intensity or fixed-hue alpha ramps (√-compressed)
//		• Band geometry: exact staircase outlines of |i−j| ≤ k diagonal bands
//		• Statistics: banded accuracy and its closed-form chance baseline
//		• Surfaces: gonum/plot export (PNG/SVG/PDF) and an ANSI terminal preview
//
// ✨ Why choose confgrid?
//
//   - Pure core – the renderer emits drawing primitives (rectangles, text,
//     segments); it never owns a device, file, or global plotting state
//   - Eager validation – bad matrices, colors, modes, or band widths fail
//     before a single primitive is produced
//   - Deterministic – no randomness, no shared mutable state, renders may run
//     concurrently without coordination
//
// Everything is organized under a few focused packages:
//
//	confmat/  — ConfusionMatrix model, validation, banded-accuracy statistics
//	heatgrid/ — cell coloring, staircase band geometry, grid/axis/highlight
//	            renderers and the chart orchestrator
//	plotgrid/ — draws a heatgrid.Drawing onto a gonum.org/v1/plot canvas
//	termgrid/ — renders the same grid as lipgloss-styled terminal output
//	cmd/      — the confgrid CLI (render, stats, preview)
//
// Quick ASCII example, a 3×3 matrix with band half-width k=1:
//
//	■ ■ ·        cells with |i−j| ≤ 1 form the band;
//	■ ■ ■        the staircase boundary outlines it,
//	· ■ ■        and accuracy sums the band's probability mass.
//
// Dive into README.md for full examples and the CLI reference.
//
//	go get github.com/katalvlaran/confgrid
package confgrid
