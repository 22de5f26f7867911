// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent
// or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for cache operations.
// Implementations can be in-memory, Redis, or any other caching solution.
//
// Example usage:
//
//	// Store a search result for five minutes
//	err := cache.Set(ctx, "news:LLM:15", data, 5*time.Minute)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "news:LLM:15")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch from the network instead
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value is stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
