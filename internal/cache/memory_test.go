//go:build !integration

package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory(t *testing.T) *Memory {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Capacity = 100
	cfg.NumShards = 4
	m, err := NewMemory(cfg)
	require.NoError(t, err)
	return m
}

func TestMemory_GetPutEvict(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(t)

	_, ok, err := m.Get(ctx, "Invoice:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Put(ctx, "Invoice:1", []byte("first")))
	got, ok, err := m.Get(ctx, "Invoice:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("first"), got)

	require.NoError(t, m.Put(ctx, "Invoice:1", []byte("second")))
	got, _, _ = m.Get(ctx, "Invoice:1")
	assert.Equal(t, []byte("second"), got)
	assert.Equal(t, 1, m.Size())

	require.NoError(t, m.Evict(ctx, "Invoice:1"))
	_, ok, err = m.Get(ctx, "Invoice:1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, m.Evict(ctx, "Invoice:404"))
}

func TestMemory_PutCopiesValue(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(t)

	value := []byte("abc")
	require.NoError(t, m.Put(ctx, "k", value))
	value[0] = 'z'

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), got)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.TTL = 20 * time.Millisecond
	m, err := NewMemory(cfg)
	require.NoError(t, err)

	require.NoError(t, m.Put(ctx, "k", []byte("v")))
	time.Sleep(40 * time.Millisecond)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_CancelledContext(t *testing.T) {
	m := newTestMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.Put(ctx, "k", nil), context.Canceled)
	assert.ErrorIs(t, m.Evict(ctx, "k"), context.Canceled)
}

func TestNewMemory_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "capacity", mutate: func(c *Config) { c.Capacity = 0 }},
		{name: "shards", mutate: func(c *Config) { c.NumShards = -1 }},
		{name: "capacity below shards", mutate: func(c *Config) { c.Capacity = 10; c.NumShards = 64 }},
		{name: "ttl", mutate: func(c *Config) { c.TTL = 0 }},
		{name: "eviction", mutate: func(c *Config) { c.EvictionPercentage = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			m, err := NewMemory(cfg)
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("Invoice:%d", n%5)
			_ = m.Put(ctx, key, []byte(key))
			_, _, _ = m.Get(ctx, key)
			if n%3 == 0 {
				_ = m.Evict(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
