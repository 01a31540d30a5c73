// Package cache provides the small read-through cache used for the stats
// summary and youtube-info lookups. Two implementations exist: an in-process
// memory cache (default) and a Redis-backed cache selected by configuration.
package cache

import (
	"context"
	"time"
)

// Cache defines the interface for cache implementations
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value in the cache with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache
	Close() error
}
