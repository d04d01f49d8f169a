package cache

import (
	"context"
	"time"
)

// Client is a higher-level cache client that wraps the Cache interface and
// adds JSON serialization.
type Client interface {
	// GetCache returns the underlying Cache implementation.
	GetCache() Cache

	// GetJSON decodes the cached value for key into v.
	// Returns false when the key does not exist.
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)

	// SetJSON encodes v as JSON and stores it under key.
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) (bool, error)

	// Ping checks if the cache connection is alive.
	Ping(ctx context.Context) error

	// Close closes the cache client connection.
	Close() error
}
