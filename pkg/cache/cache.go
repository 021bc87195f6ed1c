// Package cache stores rendered Mikado graphs so unchanged outlines are not
// laid out by Graphviz again.
//
// Keys are derived from the DOT text and the output format, so any change to
// the outline, colors or layout direction yields a new key:
//
//	key := cache.ArtifactKey(dot, "svg")
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
//
// [FileCache] persists entries under the user's cache directory; [NullCache]
// disables caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored data and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// ArtifactTTL is how long rendered artifacts stay cached.
const ArtifactTTL = 7 * 24 * time.Hour

// ArtifactKey returns the cache key for dot rendered as format, in the form
// "artifact:<format>:<sha256 of dot>".
func ArtifactKey(dot, format string) string {
	return strings.Join([]string{"artifact", format, Hash([]byte(dot))}, ":")
}

// Hash returns the hex-encoded SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache never stores anything. Used for --no-cache and in tests.
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
