// Package app provides cache and service initialization.
package app

import (
	"context"
	"fmt"

	"github.com/guttosm/invoice-service/config"
	"github.com/guttosm/invoice-service/internal/cache"
	"github.com/guttosm/invoice-service/internal/repository"
	"github.com/guttosm/invoice-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Invoices *service.InvoiceService
	Cache    cache.Cache
	Codec    cache.Codec
}

// CacheConfig converts the configured cache region into a cache.Config.
func CacheConfig(cfg config.CacheConfig) cache.Config {
	cacheCfg := cache.DefaultConfig()
	cacheCfg.Backend = cfg.Backend
	cacheCfg.Region = cfg.Region
	cacheCfg.TTL = cfg.TTL
	cacheCfg.Codec = cfg.Codec
	cacheCfg.Capacity = cfg.Size
	cacheCfg.NumShards = cfg.Shards
	cacheCfg.EvictionPercentage = cfg.EvictionPercentage
	cacheCfg.RedisAddr = cfg.RedisAddr
	cacheCfg.RedisPassword = cfg.RedisPassword
	cacheCfg.RedisDB = cfg.RedisDB
	cacheCfg.RedisKeyPrefix = cfg.RedisKeyPrefix
	return cacheCfg
}

// InitializeServices builds the invoice cache region and the invoice service
// on top of store. A cache region that fails its configuration check stops
// startup.
func InitializeServices(ctx context.Context, cfg config.CacheConfig, store repository.InvoiceRepositoryInterface) (*ServiceComponents, error) {
	cacheCfg := CacheConfig(cfg)

	codec, err := cache.NewCodec(cacheCfg.Codec)
	if err != nil {
		return nil, err
	}

	c, err := cache.New(ctx, cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("initialize cache: %w", err)
	}

	log.Info().
		Str("region", cacheCfg.Region).
		Str("backend", cacheCfg.Backend).
		Str("codec", codec.Name()).
		Dur("ttl", cacheCfg.TTL).
		Msg("Cache region ready")

	return &ServiceComponents{
		Invoices: service.NewInvoiceService(store, c, codec),
		Cache:    c,
		Codec:    codec,
	}, nil
}
