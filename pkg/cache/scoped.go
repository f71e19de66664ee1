package cache

import (
	"context"
	"time"
)

// ScopedCache prefixes every key before delegating to an inner cache.
// Each source client gets its own scope ("arxiv:", "nasa:", ...), so two
// sources can never collide even when they share a backend.
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped returns a view of c whose keys are prefixed with prefix.
// A nil inner cache is replaced with a [NullCache].
func Scoped(c Cache, prefix string) *ScopedCache {
	if c == nil {
		c = NewNullCache()
	}
	return &ScopedCache{inner: c, prefix: prefix}
}

// Prefix returns the key prefix of this scope.
func (s *ScopedCache) Prefix() string { return s.prefix }

// Get retrieves a prefixed key from the inner cache.
func (s *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores a prefixed key in the inner cache.
func (s *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes a prefixed key from the inner cache.
func (s *ScopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close does nothing; the inner cache is owned by whoever created it.
func (s *ScopedCache) Close() error { return nil }

var _ Cache = (*ScopedCache)(nil)
