// Package chart defines the line chart description endlabel draws.
//
// A chart file names the series to plot, the vertical axis, the canvas size
// and the labels to focus. Files may be written in TOML, YAML or JSON:
//
//	title = "Life expectancy"
//	width = 800
//	height = 500
//	focus = ["FRA"]
//
//	[axis]
//	scale = "linear"
//
//	[[series]]
//	key = "FRA"
//	label = "France"
//	color = "#3360a9"
//	values = [70.2, 74.1, 82.5]
//
// [Load] picks the decoder from the file extension, [Parse] from an explicit
// [Format]. Loaded charts have defaults applied and are validated; call
// [Chart.Items] to obtain the legend items (one per series, positioned at
// the series' last value).
package chart
