// Package cache stores downloaded lexicon releases so repeated imports do
// not hit the network.
//
// Only source data is cached. Graphs, annotations and extracted trees are
// always recomputed in process.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a local directory
//   - [RedisCache]: a shared Redis instance, for servers that import on start
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so deployments sharing one Redis can be scoped
// with [NewScopedKeyer].
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss or an expired
	// entry is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// SourceKey is the key for a downloaded lexicon release.
	SourceKey(url string) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default [Keyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SourceKey returns "source:<sha256(url)>".
func (DefaultKeyer) SourceKey(url string) string { return hashKey("source", url) }
