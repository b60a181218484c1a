package cache

import (
	"context"
	"fmt"
	"time"
)

// Supported backends and codecs.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Config describes one named cache region.
type Config struct {
	// Backend is either BackendMemory or BackendRedis.
	Backend string
	// Region names the cache for metrics and, with Redis, prefixes keys
	// when RedisKeyPrefix is set.
	Region string
	// TTL is the time-to-live of every entry.
	TTL time.Duration
	// Codec is the value encoding used by the service.
	Codec string

	// Capacity is the maximum number of entries kept in memory.
	Capacity int
	// NumShards is the number of memory shards.
	NumShards int
	// EvictionPercentage is the share of entries dropped when the memory
	// cache is full. Must be between 1 and 100.
	EvictionPercentage int

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix bool
}

// DefaultConfig returns an in-memory "Invoice" region.
func DefaultConfig() Config {
	return Config{
		Backend:            BackendMemory,
		Region:             "Invoice",
		TTL:                10 * time.Minute,
		Codec:              CodecJSON,
		Capacity:           10000,
		NumShards:          64,
		EvictionPercentage: 10,
		RedisAddr:          "localhost:6379",
	}
}

// Validate checks the configuration for the selected backend.
func (c Config) Validate() error {
	if c.Region == "" {
		return &ConfigError{Field: "Region", Message: "must not be empty"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.Codec != CodecJSON && c.Codec != CodecMsgpack {
		return &ConfigError{Field: "Codec", Message: fmt.Sprintf("unknown codec %q", c.Codec)}
	}

	switch c.Backend {
	case BackendMemory:
		return c.validateMemory()
	case BackendRedis:
		if c.RedisAddr == "" {
			return &ConfigError{Field: "RedisAddr", Message: "must not be empty"}
		}
	default:
		return &ConfigError{Field: "Backend", Message: fmt.Sprintf("unknown backend %q", c.Backend)}
	}
	return nil
}

// validateMemory checks the sizing of the in-memory backend. Every shard
// must be able to hold at least one entry.
func (c Config) validateMemory() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.Capacity < c.NumShards {
		return &ConfigError{Field: "Capacity", Message: fmt.Sprintf("must be at least the number of shards (%d)", c.NumShards)}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "cache config error in field " + e.Field + ": " + e.Message
}

// New validates cfg and builds the configured backend, decorated with
// Prometheus instrumentation for the region.
func New(ctx context.Context, cfg Config) (Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		backend Cache
		err     error
	)
	switch cfg.Backend {
	case BackendRedis:
		backend, err = NewRedis(ctx, cfg)
	default:
		backend, err = NewMemory(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cache region %s: %w", cfg.Region, err)
	}

	return Instrument(backend, cfg.Region), nil
}
