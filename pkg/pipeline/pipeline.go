// Package pipeline provides the chart → layout → render pipeline for endlabel.
//
// This package implements the complete pipeline that the CLI and the HTTP
// service share, so both produce byte-identical output for the same input.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Measure legend labels, frame the canvas and place the labels
//  2. Render: Draw the scene in the requested formats (SVG, PNG, PDF)
//
// Layouts are memoized in process by a content hash of their inputs.
// Rendered artifacts go through a [cache.Cache], so a file or Redis cache
// can serve them across runs and replicas.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Chart:   c,
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/endlabel/pkg/cache"
	"github.com/matzehuels/endlabel/pkg/chart"
	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/render"
	"github.com/matzehuels/endlabel/pkg/render/sink"
	"github.com/matzehuels/endlabel/pkg/textmeasure"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTicks is the approximate number of value axis ticks.
	DefaultTicks = 5

	// DefaultPNGScale renders PNGs at 2x resolution.
	DefaultPNGScale = 2.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Chart is the validated chart to draw.
	Chart *chart.Chart `json:"-"`

	// Focus overrides the chart's focus keys when non-nil. An empty,
	// non-nil slice clears focus.
	Focus []string `json:"focus,omitempty"`
	// Measurer overrides the chart's measurer name when set.
	Measurer string `json:"measurer,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`
	// Ticks is the approximate axis tick count. Zero means DefaultTicks and
	// a negative count hides the axis. Defaulting keeps negative counts, so
	// validating twice never turns "hide" back into the default.
	Ticks    int     `json:"ticks,omitempty"`
	PNGScale float64 `json:"png_scale,omitempty"`

	// Refresh bypasses the layout memo and the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is everything the renderer drew.
	Scene sink.Scene

	// LayoutHash is the content hash of the layout inputs.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Marks       int
	Overlaps    int
	MovesNeeded int
	Strategy    string
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// LayoutResult is a computed scene and the hash of its inputs.
type LayoutResult struct {
	Scene sink.Scene
	Hash  string
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from the in-process memo
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the chart and the measurer override.
func (o *Options) ValidateForLayout() error {
	if o.Chart == nil {
		return errors.New(errors.ErrCodeInvalidInput, "chart is required")
	}
	if err := o.Chart.Validate(); err != nil {
		return err
	}
	if o.Measurer != "" {
		if err := errors.ValidateFormat(o.Measurer, textmeasure.Names...); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "measurer")
		}
	}
	o.setLoggerDefault()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Ticks == 0 {
		o.Ticks = DefaultTicks
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, render.Formats...); err != nil {
			return err
		}
	}
	if o.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", o.PNGScale)
	}
	return nil
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// FocusKeys returns the effective focus keys.
func (o *Options) FocusKeys() []string {
	if o.Focus != nil {
		return o.Focus
	}
	return o.Chart.Focus
}

// MeasurerName returns the effective measurer name.
func (o *Options) MeasurerName() string {
	if o.Measurer != "" {
		return o.Measurer
	}
	return o.Chart.Measurer
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Measurer:       o.MeasurerName(),
		FocusKeys:      slices.Clone(o.FocusKeys()),
		Width:          o.Chart.Width,
		Height:         o.Chart.Height,
		FontSize:       o.Chart.FontSize,
		LegendMaxWidth: o.Chart.LegendMaxWidth,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Interactive: o.Interactive,
		Ticks:       o.Ticks,
		PNGScale:    o.PNGScale,
	}
}

// BuildScene builds the drawing for c: it measures the legend, frames the
// canvas around it, builds the value axis and places the labels.
func BuildScene(c *chart.Chart, m legend.Measurer, focusKeys []string) (sink.Scene, error) {
	l, err := legend.New(c.Items(), c.FontSize, c.LegendMaxWidth, m)
	if err != nil {
		return sink.Scene{}, err
	}
	f := render.NewFrame(c.Width, c.Height, l.Width(), c.FontSize, c.Title != "")
	axis, err := c.ValueAxis(f.PlotTop, f.PlotBottom)
	if err != nil {
		return sink.Scene{}, err
	}
	lay, err := l.Layout(axis, f.LegendX, focusKeys)
	if err != nil {
		return sink.Scene{}, err
	}
	return sink.Scene{Chart: c, Frame: f, Axis: axis, Layout: lay}, nil
}
