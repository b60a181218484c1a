package cache

import (
	"context"

	"github.com/viccon/sturdyc"
)

// Memory is an in-process cache backed by a sharded sturdyc client.
type Memory struct {
	client *sturdyc.Client[[]byte]
}

// NewMemory creates an in-memory cache from the capacity, shard, TTL and
// eviction settings of cfg.
func NewMemory(cfg Config) (*Memory, error) {
	if err := cfg.validateMemory(); err != nil {
		return nil, err
	}
	if cfg.TTL <= 0 {
		return nil, &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	client := sturdyc.New[[]byte](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
	)
	return &Memory{client: client}, nil
}

// Get implements Cache.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	value, ok := m.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Put implements Cache. The value is copied so later mutation by the
// caller does not leak into the cache.
func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.client.Set(key, stored)
	return nil
}

// Evict implements Cache.
func (m *Memory) Evict(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.client.Delete(key)
	return nil
}

// Ping implements Cache. The memory cache is always reachable.
func (m *Memory) Ping(context.Context) error {
	return nil
}

// Close implements Cache.
func (m *Memory) Close() error {
	return nil
}

// Size returns the number of entries currently held.
func (m *Memory) Size() int {
	return m.client.Size()
}
