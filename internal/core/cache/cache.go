// Package cache defines the cache abstraction used to memoize upstream
// responses such as blog post listings.
package cache

import (
	"context"
	"time"
)

// Cache stores raw bytes under string keys.
type Cache interface {
	// Get returns nil, nil when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl selects the implementation's
	// default lifetime.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete reports whether key existed.
	Delete(ctx context.Context, key string) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}
