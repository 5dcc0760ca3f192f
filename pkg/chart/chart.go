package chart

import (
	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/scale"
)

// Defaults applied by [Chart.SetDefaults].
const (
	DefaultWidth    = 800
	DefaultHeight   = 500
	DefaultFontSize = 16
)

// Chart is a line chart with one legend label per series.
type Chart struct {
	Title          string   `toml:"title" yaml:"title" json:"title,omitempty"`
	Width          float64  `toml:"width" yaml:"width" json:"width,omitempty"`
	Height         float64  `toml:"height" yaml:"height" json:"height,omitempty"`
	FontSize       float64  `toml:"font_size" yaml:"font_size" json:"font_size,omitempty"`
	LegendMaxWidth float64  `toml:"legend_max_width" yaml:"legend_max_width" json:"legend_max_width,omitempty"`
	Focus          []string `toml:"focus" yaml:"focus" json:"focus,omitempty"`
	Measurer       string   `toml:"measurer" yaml:"measurer" json:"measurer,omitempty"`
	Axis           Axis     `toml:"axis" yaml:"axis" json:"axis"`
	Series         []Series `toml:"series" yaml:"series" json:"series"`
}

// Axis describes the vertical value axis. Nil bounds are derived from the
// series values.
type Axis struct {
	Min   *float64   `toml:"min" yaml:"min" json:"min,omitempty"`
	Max   *float64   `toml:"max" yaml:"max" json:"max,omitempty"`
	Scale scale.Type `toml:"scale" yaml:"scale" json:"scale,omitempty"`
}

// Series is one plotted line.
type Series struct {
	Key    string    `toml:"key" yaml:"key" json:"key"`
	Label  string    `toml:"label" yaml:"label" json:"label,omitempty"`
	Color  string    `toml:"color" yaml:"color" json:"color,omitempty"`
	Values []float64 `toml:"values" yaml:"values" json:"values"`
}

// Last returns the final value of the series.
func (s Series) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return s.Values[len(s.Values)-1], true
}

// Items returns one legend item per series with values, in series order.
func (c *Chart) Items() []legend.Item {
	items := make([]legend.Item, 0, len(c.Series))
	for _, s := range c.Series {
		v, ok := s.Last()
		if !ok {
			continue
		}
		items = append(items, legend.Item{
			Key:    s.Key,
			Label:  s.Label,
			Color:  s.Color,
			YValue: v,
		})
	}
	return items
}

// Keys returns every series key in order.
func (c *Chart) Keys() []string {
	keys := make([]string, len(c.Series))
	for i, s := range c.Series {
		keys[i] = s.Key
	}
	return keys
}

// Lookup returns the series with the given key.
func (c *Chart) Lookup(key string) (Series, bool) {
	for _, s := range c.Series {
		if s.Key == key {
			return s, true
		}
	}
	return Series{}, false
}

// ValueAxis builds the value scale mapping onto [rangeMin, rangeMax] in
// canvas coordinates. Missing axis bounds come from the series values.
func (c *Chart) ValueAxis(rangeMin, rangeMax float64) (*scale.Axis, error) {
	var all []float64
	for _, s := range c.Series {
		all = append(all, s.Values...)
	}
	lo, hi, ok := scale.DomainOf(all)
	if !ok {
		lo, hi = 0, 1
	}
	if c.Axis.Min != nil {
		lo = *c.Axis.Min
	}
	if c.Axis.Max != nil {
		hi = *c.Axis.Max
	}
	return scale.New(c.Axis.Scale, lo, hi, rangeMin, rangeMax)
}
