package cache

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultMemoryEntries caps a MemoryCache unless WithMaxEntries says otherwise.
	DefaultMemoryEntries = 1024

	// memorySweepInterval is the minimum time between expiry sweeps in Set.
	memorySweepInterval = time.Minute
)

// MemoryCache keeps entries in a map guarded by a mutex. Expired entries
// are dropped when read and swept from Set at most once per minute. When
// the cache is full, Set evicts the oldest entry.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
	lastSweep  time.Time
	closed     bool
	now        func() time.Time
}

type memoryEntry struct {
	data      []byte
	storedAt  time.Time
	expiresAt time.Time
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryCache)

// WithMaxEntries caps the number of stored entries. Values below one keep
// the default.
func WithMaxEntries(n int) MemoryOption {
	return func(c *MemoryCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	c := &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: DefaultMemoryEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the stored value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false, ErrClosed
	}
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), e.data...), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	now := c.now()
	if now.Sub(c.lastSweep) >= memorySweepInterval {
		c.sweep(now)
	}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.sweep(now)
		if len(c.entries) >= c.maxEntries {
			c.evictOldest()
		}
	}

	e := memoryEntry{data: append([]byte(nil), data...), storedAt: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// sweep drops every entry expired at now. Callers hold c.mu.
func (c *MemoryCache) sweep(now time.Time) {
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.lastSweep = now
}

// evictOldest drops the entry stored first. Callers hold c.mu.
func (c *MemoryCache) evictOldest() {
	var (
		oldest string
		at     time.Time
		found  bool
	)
	for k, e := range c.entries {
		if !found || e.storedAt.Before(at) || (e.storedAt.Equal(at) && k < oldest) {
			oldest, at, found = k, e.storedAt, true
		}
	}
	if found {
		delete(c.entries, oldest)
	}
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	delete(c.entries, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close drops all entries. Later calls fail with ErrClosed.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = nil
	return nil
}

var _ Cache = (*MemoryCache)(nil)
