package chart

import (
	"math"

	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/scale"
	"github.com/matzehuels/endlabel/pkg/textmeasure"
)

// DefaultPalette colors series that do not name one.
var DefaultPalette = []string{
	"#3360a9", "#ca2628", "#2a9d8f", "#e76f51", "#6d3e91",
	"#c15065", "#18470f", "#9a5129", "#00847e", "#578145",
}

// SetDefaults fills zero-valued fields. An unset legend width is a third of
// the chart width.
func (c *Chart) SetDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.FontSize == 0 {
		c.FontSize = DefaultFontSize
	}
	if c.LegendMaxWidth == 0 {
		c.LegendMaxWidth = c.Width / 3
	}
	if c.Measurer == "" {
		c.Measurer = textmeasure.NameEstimate
	}
	if c.Axis.Scale == "" {
		c.Axis.Scale = scale.Linear
	}
	for i := range c.Series {
		s := &c.Series[i]
		if s.Label == "" {
			s.Label = s.Key
		}
		if s.Color == "" {
			s.Color = DefaultPalette[i%len(DefaultPalette)]
		}
	}
}

// Validate checks the chart for structural errors.
func (c *Chart) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"font_size", c.FontSize},
		{"legend_max_width", c.LegendMaxWidth},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return errors.New(errors.ErrCodeInvalidChart, "%s must be a non-negative number, got %v", f.name, f.v)
		}
	}
	if c.Width == 0 || c.Height == 0 {
		return errors.New(errors.ErrCodeInvalidChart, "chart size must be positive, got %vx%v", c.Width, c.Height)
	}
	if err := errors.ValidateFormat(c.Measurer, textmeasure.Names...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidChart, err, "measurer")
	}
	if c.Axis.Scale != scale.Linear && c.Axis.Scale != scale.Log {
		return errors.New(errors.ErrCodeInvalidChart, "unknown axis scale %q (must be linear or log)", c.Axis.Scale)
	}
	if c.Axis.Min != nil && c.Axis.Max != nil && *c.Axis.Min > *c.Axis.Max {
		return errors.New(errors.ErrCodeInvalidChart, "axis min %v exceeds max %v", *c.Axis.Min, *c.Axis.Max)
	}

	seen := make(map[string]bool, len(c.Series))
	for i, s := range c.Series {
		if err := errors.ValidateKey(s.Key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "series %d", i)
		}
		if seen[s.Key] {
			return errors.New(errors.ErrCodeInvalidChart, "duplicate series key %q", s.Key)
		}
		seen[s.Key] = true
		if err := errors.ValidateColor(s.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "series %q", s.Key)
		}
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(errors.ErrCodeInvalidChart, "series %q has non-finite value at index %d", s.Key, j)
			}
		}
	}
	for _, k := range c.Focus {
		if !seen[k] {
			return errors.New(errors.ErrCodeInvalidChart, "focus key %q names no series", k)
		}
	}
	return nil
}
