// Package cli implements the endlabel command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/endlabel/pkg/cache"
	"github.com/matzehuels/endlabel/pkg/chart"
	"github.com/matzehuels/endlabel/pkg/pipeline"
	"github.com/matzehuels/endlabel/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "endlabel"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/endlabel/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Chart Flags
// =============================================================================

// chartFlags are the chart overrides shared by render, place and focus.
type chartFlags struct {
	width    float64
	height   float64
	fontSize float64
	maxWidth float64
	measurer string
	focus    []string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "chart width (overrides file)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "chart height (overrides file)")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", 0, "chart font size; labels use 0.75x (overrides file)")
	cmd.Flags().Float64Var(&f.maxWidth, "legend-max-width", 0, "maximum legend width in pixels (overrides file)")
	cmd.Flags().StringVar(&f.measurer, "measurer", "", "text measurer: estimate, gofont (overrides file)")
	cmd.Flags().StringSliceVar(&f.focus, "focus", nil, "focused series keys, comma-separated (overrides file)")
}

// load reads the chart at path and applies the flags the user set.
func (f *chartFlags) load(cmd *cobra.Command, path string) (*chart.Chart, error) {
	c, err := chart.Load(path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		c.Width = f.width
		if !flags.Changed("legend-max-width") {
			c.LegendMaxWidth = f.width / 3
		}
	}
	if flags.Changed("height") {
		c.Height = f.height
	}
	if flags.Changed("font-size") {
		c.FontSize = f.fontSize
	}
	if flags.Changed("legend-max-width") {
		c.LegendMaxWidth = f.maxWidth
	}
	if flags.Changed("measurer") {
		c.Measurer = f.measurer
	}
	if flags.Changed("focus") {
		c.Focus = compactKeys(f.focus)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	return compactKeys(strings.Split(s, ","))
}

// compactKeys trims entries and drops empty ones. The result is never nil.
func compactKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
