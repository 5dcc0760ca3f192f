package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/endlabel/pkg/cache"
	"github.com/matzehuels/endlabel/pkg/observability"
	"github.com/matzehuels/endlabel/pkg/render"
	"github.com/matzehuels/endlabel/pkg/render/sink"
)

// RenderWithCacheInfo draws the scene in every requested format, serving
// artifacts from the cache when all of them are present.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, lr LayoutResult, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh && lr.Hash != "" {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(lr.Hash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			observeCache(ctx, "artifact", hit)
			if !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := RenderScene(ctx, lr.Scene, opts)
	if err != nil {
		return nil, false, err
	}

	if lr.Hash != "" {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(lr.Hash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
				opts.Logger.Warn("cache write failed", "format", format, "error", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, lr LayoutResult, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, lr, opts)
	return artifacts, err
}

// RenderScene draws s in every format of opts without caching.
func RenderScene(ctx context.Context, s sink.Scene, opts Options) (map[string][]byte, error) {
	ticks := max(opts.Ticks, 0)
	svgOpts := []sink.SVGOption{sink.WithTicks(ticks)}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		hooks := observability.Render()
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		var (
			data []byte
			err  error
		)
		switch format {
		case render.FormatSVG:
			data = sink.RenderSVG(s, svgOpts...)
		case render.FormatPNG:
			data, err = sink.RenderPNG(ctx, s, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.PNGScale))
		case render.FormatPDF:
			data, err = sink.RenderPDF(ctx, s, sink.WithPDFSVGOptions(svgOpts...))
		}

		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		out[format] = data
	}
	return out, nil
}
