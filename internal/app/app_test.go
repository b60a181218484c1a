//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/invoice-service/config"
	"github.com/guttosm/invoice-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			Port:              "0",
			RateLimit:         100,
			RateWindow:        time.Minute,
			RequestTimeout:    5 * time.Second,
			ShutdownTimeout:   time.Second,
			EnableIdempotency: true,
			IdempotencyTTL:    time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
		Store: config.StoreConfig{
			Backend:    config.StoreSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "invoices.db"),
		},
		Cache: config.CacheConfig{
			Backend:            config.CacheMemory,
			Region:             "Invoice",
			TTL:                time.Minute,
			Codec:              config.CodecJSON,
			Size:               100,
			Shards:             4,
			EvictionPercentage: 10,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			FailureThreshold: 5,
			SuccessThreshold: 2,
			Timeout:          time.Second,
		},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "sqlite store with memory cache",
			mutate: func(*config.Config) {},
		},
		{
			name:   "msgpack codec",
			mutate: func(c *config.Config) { c.Cache.Codec = config.CodecMsgpack },
		},
		{
			name:    "unknown store backend",
			mutate:  func(c *config.Config) { c.Store.Backend = "oracle" },
			wantErr: "invalid configuration",
		},
		{
			name:    "unknown cache codec",
			mutate:  func(c *config.Config) { c.Cache.Codec = "gob" },
			wantErr: "invalid configuration",
		},
		{
			name:    "cache region with invalid sizing",
			mutate:  func(c *config.Config) { c.Cache.Shards = 0 },
			wantErr: "initialize cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sqliteConfig(t)
			tt.mutate(&cfg)

			a, err := InitializeApp(context.Background(), cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = a.Close(context.Background()) })

			assert.NotNil(t, a.Router)
			assert.Equal(t, repository.BackendSQLite, a.Store.Backend)
			assert.Equal(t, cfg.Cache.Codec, a.Services.Codec.Name())

			w := httptest.NewRecorder()
			a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
}

func TestInitializeApp_ServesInvoices(t *testing.T) {
	a, err := InitializeApp(context.Background(), sqliteConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/", strings.NewReader(`{"name":"invoice 1","amount":10}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoice/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"invoice 1"`)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	a, err := InitializeApp(context.Background(), sqliteConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop in time")
	}
}

func TestCacheConfig(t *testing.T) {
	cfg := sqliteConfig(t).Cache
	cfg.Backend = config.CacheRedis
	cfg.RedisAddr = "cache:6379"
	cfg.RedisDB = 2
	cfg.RedisKeyPrefix = true

	cacheCfg := CacheConfig(cfg)

	assert.Equal(t, "redis", cacheCfg.Backend)
	assert.Equal(t, "Invoice", cacheCfg.Region)
	assert.Equal(t, time.Minute, cacheCfg.TTL)
	assert.Equal(t, 100, cacheCfg.Capacity)
	assert.Equal(t, 4, cacheCfg.NumShards)
	assert.Equal(t, "cache:6379", cacheCfg.RedisAddr)
	assert.Equal(t, 2, cacheCfg.RedisDB)
	assert.True(t, cacheCfg.RedisKeyPrefix)
}
