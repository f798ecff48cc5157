// Package cache stores rendered diagrams keyed by the content of their input.
//
// # Backends
//
//   - [NullCache]: never stores anything. The default when caching is off.
//   - [FileCache]: one JSON file per entry under a directory. Used by the CLI.
//   - [RedisCache]: a shared Redis instance. Used by the HTTP service.
//
// # Keys
//
// A [Keyer] derives keys from a content hash plus every option that changes
// the output, so two requests share an entry only when they would produce
// identical bytes. [ScopedKeyer] prefixes every key for namespacing.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Get returns hit=false without an error on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes. Diagrams are pure functions of their input, so entries
// only expire to bound disk and memory use.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Key types reported to cache hooks.
const (
	KeyTypeScene    = "scene"
	KeyTypeArtifact = "artifact"
)
