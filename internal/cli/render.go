package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/pipeline"
	"github.com/matzehuels/endlabel/pkg/render"
)

// stdoutPath as --output writes a single artifact to standard output.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chart       chartFlags
	output      string  // output file (single format) or base path (multiple)
	formats     string  // comma-separated output formats
	interactive bool    // embed hover/click script and hit rectangles
	ticks       int     // axis tick count; negative hides the axis
	pngScale    float64 // raster scale factor for PNG output
	noCache     bool    // bypass the artifact cache
	refresh     bool    // recompute even when cached
}

// renderCommand creates the render command for drawing a chart with its end labels.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		ticks:    pipeline.DefaultTicks,
		pngScale: pipeline.DefaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart with collision-free end labels",
		Long: `Render a chart definition (TOML, YAML or JSON) to SVG, PNG or PDF.

The output is written next to the input unless --output is given. With a
single format, --output names the file ("-" for stdout); with several
formats it is used as the base path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.chart.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format, "-" for stdout) or base path`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "embed hover and click handlers in SVG output")
	cmd.Flags().IntVar(&opts.ticks, "ticks", opts.ticks, "number of axis ticks; negative hides the axis")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and recompute")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	formats := parseFormats(opts.formats)
	paths, err := outputPaths(opts.output, input, formats)
	if err != nil {
		return err
	}

	ch, err := opts.chart.load(cmd, input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded chart", "path", input, "series", len(ch.Series))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d labels...", len(ch.Series)))
	if opts.output != stdoutPath {
		spinner.Start()
	}
	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Chart:       ch,
		Formats:     formats,
		Interactive: opts.interactive,
		Ticks:       opts.ticks,
		PNGScale:    opts.pngScale,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	})
	if opts.output == stdoutPath {
		spinner.Stop()
		if err != nil {
			return err
		}
		return writeArtifact(ctx, os.Stdout, result.Artifacts[formats[0]])
	}

	if msg, ok := renderStatus(input, err, spinner.Cancelled()); ok {
		spinner.StopWithSuccess(msg)
	} else {
		spinner.StopWithError(msg)
	}
	if err != nil {
		if errors.Is(err, errors.ErrCodeUnsupported) {
			printWarning("PNG and PDF output need rsvg-convert on PATH")
		}
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(formats, ", ")))

	for _, format := range formats {
		path := paths[format]
		if err := writeFile(ctx, path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	printLayoutStats(result.Stats.Marks, result.Stats.Overlaps, result.Stats.Strategy, result.CacheInfo.RenderHit)
	if len(ch.Series) > 1 && len(ch.Focus) == 0 {
		printNewline()
		printNextStep("Pick focused series", appName+" focus "+input)
	}
	return nil
}

// renderStatus is the line shown when the render spinner stops.
func renderStatus(input string, err error, cancelled bool) (string, bool) {
	switch {
	case err == nil:
		return "Rendered " + input, true
	case cancelled:
		return "Render cancelled", false
	default:
		return "Render failed", false
	}
}

// outputPaths maps each format to the file it is written to.
func outputPaths(output, input string, formats []string) (map[string]string, error) {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, render.Formats...); err != nil {
			return nil, err
		}
	}
	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "stdout output takes exactly one format, got %d", len(formats))
		}
		return map[string]string{formats[0]: ""}, nil
	}

	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths, nil
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// Known format extensions are stripped from output; an empty output falls
// back to input without its extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(render.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(ctx context.Context, path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := writeArtifact(ctx, f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeArtifact(ctx context.Context, w io.Writer, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
