package server

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/internal/config"
	"github.com/matzehuels/familytree/pkg/cache"
	"github.com/matzehuels/familytree/pkg/observability"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/storage"
)

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "familytree"

// Build connects the configured cache and store backends, registers metrics
// hooks and returns a ready server.
func Build(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Server, error) {
	c, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewDefaultKeyer()
	if cfg.Cache.Prefix != "" && cfg.Cache.Backend != config.CacheRedis {
		keyer = cache.NewScopedKeyer(keyer, cfg.Cache.Prefix)
	}
	runner := pipeline.NewRunner(c, keyer, logger)
	runner.TTL = cfg.Cache.TTL

	store, err := newStore(ctx, cfg.Store)
	if err != nil {
		_ = runner.Close()
		return nil, err
	}

	var metrics *observability.Metrics
	if cfg.Metrics {
		metrics = observability.NewMetrics(MetricsNamespace)
		observability.SetPipelineHooks(metrics)
		observability.SetCacheHooks(metrics)
		observability.SetServerHooks(metrics)
	}

	logger.Info("backends ready", "cache", cfg.Cache.Backend, "store", cfg.Store.Backend, "metrics", cfg.Metrics)
	return New(cfg, runner, store, metrics, logger), nil
}

func newCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheFile:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = cache.DefaultDir(); err != nil {
				return nil, fmt.Errorf("cache dir: %w", err)
			}
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return cache.NewNullCache(), nil
	}
}

func newStore(ctx context.Context, cfg config.Store) (storage.Store, error) {
	if cfg.Backend == config.StoreMongo {
		ms, err := storage.NewMongoStore(ctx, storage.MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.Database,
			Collection: cfg.Collection,
			TTL:        cfg.TTL,
		})
		if err != nil {
			return nil, err
		}
		return ms, nil
	}
	return storage.NewMemoryStore(cfg.MaxEntries), nil
}
