package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/endlabel/pkg/cache"
	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/textmeasure"
)

// maxMemo bounds the in-process layout memo. The memo is dropped whole
// when full.
const maxMemo = 256

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// A Runner is safe for concurrent use. Apart from the cache it holds a
// memo of recent layouts and the measurers it has created.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	mu        sync.Mutex
	memo      map[string]LayoutResult
	measurers map[string]legend.Measurer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		memo:      make(map[string]LayoutResult),
		measurers: make(map[string]legend.Measurer),
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	sr, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Scene = sr.Scene
	result.LayoutHash = sr.Hash
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	p := sr.Scene.Layout.Placement
	result.Stats.Marks = len(p.Marks)
	result.Stats.Overlaps = p.Overlaps()
	result.Stats.MovesNeeded = sr.Scene.Layout.MovesNeeded
	result.Stats.Strategy = p.Strategy.String()

	opts.Logger.Info("placed legend",
		"strategy", result.Stats.Strategy,
		"marks", result.Stats.Marks,
		"overlaps", result.Stats.Overlaps,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, sr, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes the scene for opts, reusing a
// memoized one when the layout inputs are unchanged.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, opts Options) (LayoutResult, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return LayoutResult{}, false, err
	}

	key := r.Keyer.LayoutKey(cache.HashJSON(opts.Chart), opts.LayoutKeyOpts())
	if !opts.Refresh {
		if sr, ok := r.lookup(key); ok {
			observeCache(ctx, "layout", true)
			return sr, true, nil
		}
		observeCache(ctx, "layout", false)
	}

	m, err := r.measurer(opts.MeasurerName())
	if err != nil {
		return LayoutResult{}, false, err
	}

	sr, err := computeScene(ctx, opts, m)
	if err != nil {
		return LayoutResult{}, false, err
	}
	sr.Hash = cache.Hash([]byte(key))

	opts.Logger.Debug("computed layout",
		"strategy", sr.Scene.Layout.Placement.Strategy,
		"attempts", len(sr.Scene.Layout.Placement.Attempts),
		"moves", sr.Scene.Layout.MovesNeeded)

	r.store(key, sr)
	return sr, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, opts Options) (LayoutResult, error) {
	sr, _, err := r.ComputeLayoutWithCacheInfo(ctx, opts)
	return sr, err
}

func (r *Runner) lookup(key string) (LayoutResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sr, ok := r.memo[key]
	return sr, ok
}

func (r *Runner) store(key string, sr LayoutResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.memo) >= maxMemo {
		clear(r.memo)
	}
	r.memo[key] = sr
}

// measurer returns the shared measurer for name, creating it on first use.
func (r *Runner) measurer(name string) (legend.Measurer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.measurers[name]; ok {
		return m, nil
	}
	m, err := textmeasure.ByName(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "measurer")
	}
	r.measurers[name] = m
	return m, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	r.mu.Lock()
	for name, m := range r.measurers {
		if f, ok := m.(*textmeasure.Face); ok {
			_ = f.Close()
		}
		delete(r.measurers, name)
	}
	r.mu.Unlock()

	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
