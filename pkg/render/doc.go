// Package render provides chart geometry and output format conversion.
//
// # Frame
//
// [NewFrame] splits the canvas into the plot area and the legend column.
// The legend sits flush against the right edge; its left edge is the
// plot's right edge, which is also where series lines end and where
// legend connectors start.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(scene, opts...)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// The [sink] subpackage draws charts to SVG, PNG and PDF.
//
// [sink]: github.com/matzehuels/endlabel/pkg/render/sink
package render
