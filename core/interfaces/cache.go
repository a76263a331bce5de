// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, SQLite or any other caching
// solution. The core uses it to memoize computed analyses; a cache
// failure is never fatal because recomputation is always possible.
//
// Example usage:
//
//	// Store a computed analysis
//	err := cache.Set(ctx, "sentiment:acme:1a2b", data, 1*time.Hour)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "sentiment:acme:1a2b")
//	if err != nil {
//		// cache miss, recompute
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
