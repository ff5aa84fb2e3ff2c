// Package plotgrid draws a heatgrid.Drawing onto a gonum.org/v1/plot
// canvas and exports it to image files.
//
// What:
//
//   - Plotter adapts a Drawing to plot.Plotter: rectangles become filled
//     polygons, segments become strokes, text becomes positioned labels.
//   - New wraps a Drawing in a ready, axis-hidden *plot.Plot.
//   - Save renders straight to a file; the format follows the extension
//     (.png, .svg, .pdf, .eps, .tif, .jpg), courtesy of plot.Save.
//
// Why:
//
//	The rendering core emits pure primitives and never touches a device;
//	this package is the surface collaborator that owns canvases and files.
//	Returned plots are ordinary gonum plots, so callers may retitle,
//	resize, or compose them before saving.
package plotgrid
