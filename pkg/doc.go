// Package pkg provides the libraries behind endlabel, a collision-free
// end-label layout for line charts.
//
// # Overview
//
// A line chart labels each series at its last value, right of the plot.
// When endpoints sit close together the labels collide; endlabel measures
// each label, centers it on its endpoint, then pushes labels apart and
// draws a bent connector from where a label wanted to be to where it ended
// up. With a focus set, only the focused labels are pushed around and the
// rest are drawn dimmed behind them.
//
// # Architecture
//
// The data flow through endlabel:
//
//	Chart file (TOML / YAML / JSON)
//	         ↓
//	    [chart] package (load, defaults, validation)
//	         ↓
//	    [legend] package (measure → initial placement → push apart → groups → focus sets)
//	         ↓
//	    [render/sink] package (SVG drawing)
//	         ↓
//	    [render] package (PNG / PDF conversion)
//
// [pipeline] ties these together and caches the results through [cache].
//
// # Quick Start
//
//	c, _ := chart.Load("gdp.toml")
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
//	defer runner.Close()
//
//	res, _ := runner.Execute(ctx, pipeline.Options{Chart: c, Formats: []string{"svg"}})
//	os.WriteFile("gdp.svg", res.Artifacts["svg"], 0o644)
//
// # Main Packages
//
// ## Placement
//
// [legend] - The label engine. [legend.New] measures labels,
// [legend.InitialPlacement] centers them on their endpoints, [legend.Place]
// tries top-down, then bottom-up, then a focus-aware overlapping fallback,
// and [legend.Partition] splits the result into focus and background sets.
//
// [scale] - Linear and log value axes implementing [legend.Scale], with
// tick generation for the drawing layer.
//
// [textmeasure] - Label measurers: a rune-width estimator and a Go font
// face measurer, both word-wrapping to the legend width.
//
// ## Input and Output
//
// [chart] - Chart definitions and series search.
//
// [render/sink] - SVG output of series, axis and legend, with optional
// interaction hooks. PNG and PDF wrap the SVG.
//
// [render] - Frame geometry and rsvg-convert based format conversion.
//
// ## Infrastructure
//
// [pipeline] - Load → layout → render orchestration shared by the CLI and
// the HTTP service.
//
// [cache] - Artifact cache backends: null, memory, file and Redis.
//
// [observability] - Hooks for layout, render, cache and HTTP events.
//
// [errors] - Structured error codes shared by every package.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/legend/...     # Placement engine only
//	go test -run Example ./...   # Examples only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/chart
// [legend]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/legend
// [legend.New]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/legend#New
// [legend.InitialPlacement]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/legend#InitialPlacement
// [legend.Place]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/legend#Place
// [legend.Partition]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/legend#Partition
// [legend.Scale]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/legend#Scale
// [scale]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/scale
// [textmeasure]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/textmeasure
// [render]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/endlabel/pkg/buildinfo
package pkg
