package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/observability"
)

// computeScene builds the scene for opts and reports it to the layout hooks.
func computeScene(ctx context.Context, opts Options, m legend.Measurer) (LayoutResult, error) {
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, len(opts.Chart.Series))

	start := time.Now()
	scene, err := BuildScene(opts.Chart, m, opts.FocusKeys())
	if err != nil {
		hooks.OnLayoutComplete(ctx, "", 0, time.Since(start), err)
		return LayoutResult{}, err
	}

	p := scene.Layout.Placement
	hooks.OnLayoutComplete(ctx, p.Strategy.String(), p.Overlaps(), time.Since(start), nil)
	return LayoutResult{Scene: scene}, nil
}

// observeCache reports a cache lookup to the cache hooks.
func observeCache(ctx context.Context, keyType string, hit bool) {
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
}
