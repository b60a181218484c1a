// Package app provides store initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/guttosm/invoice-service/config"
	"github.com/guttosm/invoice-service/internal/circuitbreaker"
	"github.com/guttosm/invoice-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// StoreComponents holds the invoice store and the resources behind it.
type StoreComponents struct {
	Repo           *repository.InvoiceRepositoryWithCircuitBreaker
	CircuitBreaker *circuitbreaker.CircuitBreaker
	Backend        string
	close          func(ctx context.Context) error
}

// Close releases the store connection.
func (s *StoreComponents) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// InitializeStore connects the configured backend and wraps it with a
// circuit breaker. The store is required, so any failure is returned.
func InitializeStore(ctx context.Context, storeCfg config.StoreConfig, cbCfg config.CircuitBreakerConfig) (*StoreComponents, error) {
	var (
		repo    repository.InvoiceRepositoryInterface
		closeFn func(ctx context.Context) error
	)

	switch storeCfg.Backend {
	case repository.BackendMongo:
		db, err := repository.NewMongoDB(storeCfg.MongoURI, storeCfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		repo = repository.NewInvoiceRepository(db)
		closeFn = db.Close

	case repository.BackendPostgres:
		db, err := repository.NewPostgres(ctx, storeCfg.PostgresDSN, repository.DefaultSQLPoolConfig())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		repo = repository.NewInvoiceSQLRepository(db)
		closeFn = func(context.Context) error { return db.Close() }

	case repository.BackendSQLite:
		db, err := repository.NewSQLite(ctx, storeCfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		repo = repository.NewInvoiceSQLRepository(db)
		closeFn = func(context.Context) error { return db.Close() }

	default:
		return nil, fmt.Errorf("unknown store backend %q", storeCfg.Backend)
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cbCfg.FailureThreshold,
		SuccessThreshold: cbCfg.SuccessThreshold,
		Timeout:          cbCfg.Timeout,
		Name:             storeCfg.Backend + "-invoices",
	})

	log.Info().Str("backend", storeCfg.Backend).Msg("Connected to invoice store")

	return &StoreComponents{
		Repo:           repository.NewInvoiceRepositoryWithCircuitBreaker(repo, storeCfg.Backend, cb),
		CircuitBreaker: cb,
		Backend:        storeCfg.Backend,
		close:          closeFn,
	}, nil
}
