// Package cache stores rendered artifacts and fetched remote data.
//
// Renders are keyed by a hash of the source image and every option that
// affects the output, so re-rendering a screenshot with unchanged settings is
// a lookup. Backends: [FileCache] for the CLI, [RedisCache] for the HTTP
// service, and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Default TTLs by entry kind.
const (
	TTLHTTP     = 24 * time.Hour
	TTLAsset    = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
