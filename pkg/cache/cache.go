// Package cache provides caching for enumeration runs and rendered diagrams.
//
// Three backends implement the same small interface: [FileCache] for CLI
// usage, [RedisCache] for the API server, and [NullCache] to disable caching.
// Keys are derived through a [Keyer] so that every consumer of the cache
// agrees on what identifies an entry.
//
// Enumeration results are deterministic for a given genus, so cached entries
// never go stale; TTLs exist to bound disk and memory usage, not for
// correctness.
package cache

import (
	"context"
	"time"
)

// Cache is the backend interface shared by all implementations.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the things braidkit caches.
type Keyer interface {
	// EnumerationKey identifies the full record table of one genus.
	EnumerationKey(genus int) string

	// DiagramKey identifies a rendered interlacement diagram.
	DiagramKey(word, format string) string
}

// DefaultKeyer generates hashed keys with stable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// EnumerationKey generates a key for an enumeration result table.
func (k *DefaultKeyer) EnumerationKey(genus int) string {
	return hashKey("enum", genus)
}

// DiagramKey generates a key for a rendered diagram.
func (k *DefaultKeyer) DiagramKey(word, format string) string {
	return hashKey("diagram", word, format)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
