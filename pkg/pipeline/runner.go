package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/cache"
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/observability"
	"github.com/matzehuels/familytree/pkg/render/sink"
	"github.com/matzehuels/familytree/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so cache keys and hooks stay consistent.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default entry lifetimes when positive.
	TTL time.Duration
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
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compute → render pipeline with caching.
//
// Artifacts are looked up first; when every requested format is cached the
// family is not laid out at all. Otherwise the scene is taken from the cache
// if possible and all formats are rendered again.
func (r *Runner) Execute(ctx context.Context, f family.Family, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	familyHash, err := cache.HashJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash family")
	}
	result := &Result{
		FamilyHash: familyHash,
		Stats:      Stats{People: len(f.Members)},
	}

	sceneKey := r.Keyer.SceneKey(familyHash, opts.SceneKeyOpts())
	sceneHash := cache.Hash([]byte(sceneKey))

	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, sceneHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			opts.Logger.Debug("artifacts from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	hooks := observability.Pipeline()

	// Stage 1: Compute
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(f.Members))
	d, sceneHit, err := r.compute(ctx, f, sceneKey, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	placed := 0
	if d != nil {
		placed = d.Scene.Count(scene.KindBox)
	}
	hooks.OnLayoutComplete(ctx, placed, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.Placed = placed
	result.Stats.Generations = d.Layout.Generations()
	result.CacheInfo.SceneHit = sceneHit

	opts.Logger.Info("computed layout",
		"people", result.Stats.People,
		"placed", placed,
		"generations", result.Stats.Generations,
		"cached", sceneHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := RenderDiagram(ctx, f, d.Layout, d.Scene, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		r.set(ctx, key, data, cache.TTLArtifact, cache.KeyTypeArtifact)
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render is a convenience wrapper that calls Execute and returns only the
// artifacts.
func (r *Runner) Render(ctx context.Context, f family.Family, opts Options) (map[string][]byte, error) {
	result, err := r.Execute(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	return result.Artifacts, nil
}

// compute returns the diagram, from cache when only scene formats are
// requested. A cached scene carries no layout, so graph formats always
// recompute.
func (r *Runner) compute(ctx context.Context, f family.Family, key string, opts Options) (*Diagram, bool, error) {
	if !opts.Refresh && !opts.NeedsGraph() {
		if data, hit := r.get(ctx, key, cache.KeyTypeScene); hit {
			if s, _, err := sink.ReadJSON(data); err == nil {
				return &Diagram{Scene: s}, true, nil
			}
			// Unreadable entries fall through and are overwritten.
		}
	}

	d, err := Compute(f, opts.Layout)
	if err != nil {
		return nil, false, err
	}

	if data, err := sink.RenderJSON(d.Scene); err == nil {
		r.set(ctx, key, data, cache.TTLScene, cache.KeyTypeScene)
	}
	return d, false, nil
}

// cachedArtifacts returns every requested format from cache, or false if any
// is missing.
func (r *Runner) cachedArtifacts(ctx context.Context, sceneHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		data, hit := r.get(ctx, key, cache.KeyTypeArtifact)
		if !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

func (r *Runner) get(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "error", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

func (r *Runner) set(ctx context.Context, key string, data []byte, ttl time.Duration, keyType string) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil {
			return fmt.Errorf("close cache: %w", err)
		}
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
