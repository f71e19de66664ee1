package sources

import "sync"

// Memo shares results between sources within one run. The arXiv ticker and
// table regions both render the same feed and must not fetch it twice, even
// with caching disabled.
//
// Only successful results are kept; a failed call is retried by the next
// caller. A nil *Memo memoizes nothing.
type Memo struct {
	mu      sync.Mutex
	entries map[string]*memoEntry
}

type memoEntry struct {
	mu   sync.Mutex
	done bool
	v    any
}

// NewMemo creates an empty Memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[string]*memoEntry)}
}

// Memoize returns the value stored under key, calling fn to produce it on
// first use. Concurrent callers for the same key wait for a single call.
func Memoize[T any](m *Memo, key string, fn func() (T, error)) (T, error) {
	if m == nil {
		return fn()
	}

	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &memoEntry{}
		m.entries[key] = e
	}
	m.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		if v, ok := e.v.(T); ok {
			return v, nil
		}
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	e.v, e.done = v, true
	return v, nil
}
