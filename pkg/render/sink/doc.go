// Package sink draws a chart and its end-of-line legend to SVG, PNG and PDF.
//
// A [Scene] bundles everything the drawing needs: the chart, its frame, the
// value axis and the computed legend layout. [RenderSVG] writes a standalone
// SVG document; [RenderPNG] and [RenderPDF] convert it with rsvg-convert.
//
// Legend labels come in two sets. Focused labels are drawn in their series
// color with a connector back to the series endpoint. Background labels are
// dimmed, lighter when nothing is focused (they are the labels that could
// not be placed without overlap) and darker in focus mode.
//
// With [WithInteraction] every label gets an invisible hit rectangle with a
// data-key attribute, and a small script dispatches endlabel:mouseover,
// endlabel:click and endlabel:mouseleave events on the root element.
package sink
