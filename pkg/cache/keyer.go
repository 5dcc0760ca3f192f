package cache

import "slices"

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey identifies a computed legend layout.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered output file.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the chart that change a layout.
type LayoutKeyOpts struct {
	Measurer       string   `json:"measurer"`
	FocusKeys      []string `json:"focus,omitempty"`
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
	FontSize       float64  `json:"font_size"`
	LegendMaxWidth float64  `json:"legend_max_width"`
}

// ArtifactKeyOpts are the inputs besides the layout that change an artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Interactive bool    `json:"interactive"`
	Ticks       int     `json:"ticks"`
	PNGScale    float64 `json:"png_scale"`
}

// DefaultKeyer hashes the key options together with the content hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer. Focus key order does not matter.
func (DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	opts.FocusKeys = slices.Compact(slices.Sorted(slices.Values(opts.FocusKeys)))
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
