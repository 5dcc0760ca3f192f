package render

// Frame margins in pixels, relative to the chart font size where noted.
const (
	marginTop    = 10.0
	marginBottom = 30.0
	axisWidth    = 50.0
	// titleLines is the title band height in font sizes.
	titleLines = 2.0
)

// Frame is the canvas split into plot and legend areas.
type Frame struct {
	Width, Height float64

	// Plot area. Values map into [PlotTop, PlotBottom].
	PlotLeft, PlotRight float64
	PlotTop, PlotBottom float64

	// LegendX is the left edge of the legend column.
	LegendX float64
	// TitleY is the baseline of the title; zero when there is no title.
	TitleY float64
}

// NewFrame lays out a width x height canvas with a legend column of
// legendWidth on the right. The plot keeps at least a quarter of the
// canvas width even when the legend is wider.
func NewFrame(width, height, legendWidth, fontSize float64, hasTitle bool) Frame {
	f := Frame{
		Width:      width,
		Height:     height,
		PlotLeft:   axisWidth,
		PlotTop:    marginTop,
		PlotBottom: max(marginTop, height-marginBottom),
	}
	if hasTitle {
		f.TitleY = marginTop + fontSize
		f.PlotTop = min(f.PlotBottom, marginTop+titleLines*fontSize)
	}

	legendX := width - legendWidth
	f.PlotRight = max(legendX, f.PlotLeft+max(0, width-axisWidth)/4)
	f.LegendX = f.PlotRight
	return f
}

// PlotWidth returns the horizontal extent of the plot area.
func (f Frame) PlotWidth() float64 { return f.PlotRight - f.PlotLeft }

// PointX returns the x of the i-th of n evenly spaced samples. A single
// sample sits at the right edge so it lines up with its label.
func (f Frame) PointX(i, n int) float64 {
	if n <= 1 {
		return f.PlotRight
	}
	return f.PlotLeft + float64(i)/float64(n-1)*f.PlotWidth()
}
