// Package middleware provides HTTP middleware components for the invoice service.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/cache"
	"github.com/rs/zerolog/log"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
	// IdempotencyRegion is the cache region holding replayable responses.
	IdempotencyRegion = "Idempotency"
)

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode  int    `msgpack:"status"`
	ContentType string `msgpack:"content_type"`
	Body        []byte `msgpack:"body"`
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   cache.Cache
	Codec   cache.Codec
	Enabled bool
}

// NewIdempotencyCache builds the in-memory region used to replay responses.
func NewIdempotencyCache(ttl time.Duration) (cache.Cache, error) {
	cfg := cache.DefaultConfig()
	cfg.Region = IdempotencyRegion
	cfg.TTL = ttl
	cfg.Capacity = 5000
	cfg.NumShards = 16
	return cache.New(context.Background(), cfg)
}

// DefaultIdempotencyConfig returns idempotency backed by a fresh memory cache.
func DefaultIdempotencyConfig() IdempotencyConfig {
	c, err := NewIdempotencyCache(IdempotencyKeyTTL)
	if err != nil {
		log.Error().Err(err).Msg("Idempotency cache unavailable, idempotency disabled")
		return IdempotencyConfig{}
	}
	return IdempotencyConfig{
		Cache:   c,
		Codec:   cache.MsgpackCodec{},
		Enabled: true,
	}
}

// Idempotency returns a middleware that handles idempotency using the Idempotency-Key header.
// A POST, PUT or PATCH repeated with the same key, path and body within the
// TTL gets the first successful response replayed instead of running again.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.Codec == nil {
		cfg.Codec = cache.MsgpackCodec{}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := generateCacheKey(key, c.Request)

		if data, ok, err := cfg.Cache.Get(ctx, cacheKey); err == nil && ok {
			var cached cachedResponse
			if err := cfg.Codec.Unmarshal(data, &cached); err == nil {
				c.Header(IdempotencyReplayedHeader, "true")
				c.Data(cached.StatusCode, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		data, err := cfg.Codec.Marshal(cachedResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err == nil {
			err = cfg.Cache.Put(ctx, cacheKey, data)
		}
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("Failed to store idempotent response")
		}
	}
}

// generateCacheKey hashes the idempotency key with the method, path and body.
func generateCacheKey(idempotencyKey string, req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter captures the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
