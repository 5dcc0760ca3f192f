// Package cache stores rendered chart artifacts.
//
// All backends implement [Cache], a byte-oriented key/value store with
// optional expiry:
//
//   - [NullCache] never stores anything (caching disabled)
//   - [MemoryCache] keeps entries in process, for tests and single-node servers
//   - [FileCache] keeps entries on disk, for the CLI
//   - [RedisCache] shares entries between server replicas
//
// Keys are built by a [Keyer] from content hashes so identical inputs map to
// the same entry regardless of which process computed them.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a key/value store for serialized artifacts.
type Cache interface {
	// Get returns the value for key. hit is false on a miss or an expired
	// entry; err is reserved for backend failures.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
