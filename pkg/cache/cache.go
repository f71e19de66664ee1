// Package cache provides the response cache shared by all source clients.
//
// # Overview
//
// Upstream APIs are slow, rate limited (NASA's DEMO_KEY allows 30 requests an
// hour) and occasionally down. Caching raw responses lets a scheduled run
// reuse recent data and lets the arXiv ticker and table regions share one
// fetch.
//
// Four backends implement [Cache]:
//
//   - [FileCache]: JSON entries under ~/.cache/readmefeed (default)
//   - [MemoryCache]: an in-process LRU, for long-lived embedding programs
//   - [RedisCache]: a shared Redis instance, useful on CI runners
//   - [NullCache]: caching disabled (--no-cache)
//
// [Open] selects a backend by name. [Scoped] namespaces keys so every source
// gets its own key space.
//
// The package also holds the transient-failure helpers ([Retryable],
// [Retry]) used by the HTTP client.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Cache stores opaque byte payloads with an optional time-to-live.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open creates the cache backend named by backend.
// dir is used by the file backend, redisURL by the redis backend.
func Open(backend, dir, redisURL string) (Cache, error) {
	switch backend {
	case "", BackendFile:
		return NewFileCache(dir)
	case BackendMemory:
		return NewMemoryCache(DefaultMemoryEntries), nil
	case BackendRedis:
		return NewRedisCache(redisURL)
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
