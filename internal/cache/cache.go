// Package cache provides the key-value caches used by the invoice service.
//
// Values are opaque byte slices; callers encode and decode them with a Codec.
// Two backends are available: an in-process sharded cache and Redis.
package cache

import (
	"context"
	"strconv"
)

// Cache is a byte-oriented key-value cache.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Evict removes key. Evicting a missing key is not an error.
	Evict(ctx context.Context, key string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend resources.
	Close() error
}

const keySeparator = ":"

// Key returns the cache key of a single entity, e.g. "Invoice:42".
func Key(entity string, id int64) string {
	return entity + keySeparator + strconv.FormatInt(id, 10)
}

// CollectionKey returns the cache key under which the whole entity
// collection is stored. It is the bare entity name.
func CollectionKey(entity string) string {
	return entity
}
