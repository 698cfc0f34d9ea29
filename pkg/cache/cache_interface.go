package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read cache layer. Implementations live in
// internal/infrastructure/cache; keeping the interface here lets services
// depend on it without pulling in the Redis client.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern,
	// e.g. "games:list:*" after a game mutation.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
