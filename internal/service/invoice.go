// Package service implements the invoice use cases on top of the durable
// store and the cache.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/invoice-service/internal/cache"
	"github.com/guttosm/invoice-service/internal/domain/model"
	"github.com/guttosm/invoice-service/internal/metrics"
	"github.com/guttosm/invoice-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrInvoiceNotFound is returned when no invoice has the requested id.
var ErrInvoiceNotFound = errors.New("invoice not found")

// Operation results recorded in metrics.
const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultError    = "error"
)

// InvoiceService is the cache-aside orchestrator for invoices.
//
// Single invoices are cached under Key(entity, id) and the full list under
// CollectionKey(entity). Reads populate the cache on a miss, updates write
// the new value through and deletes evict it. The list entry is only
// refreshed when the cache drops it, so it can lag behind mutations.
type InvoiceService struct {
	repo   repository.InvoiceRepositoryInterface
	cache  cache.Cache
	codec  cache.Codec
	entity string
}

// NewInvoiceService creates the service. A nil codec defaults to JSON.
func NewInvoiceService(repo repository.InvoiceRepositoryInterface, c cache.Cache, codec cache.Codec) *InvoiceService {
	if codec == nil {
		codec = cache.JSONCodec{}
	}
	return &InvoiceService{
		repo:   repo,
		cache:  c,
		codec:  codec,
		entity: model.InvoiceEntity,
	}
}

// Create stores a new invoice and returns it with its assigned id.
// The cache is not touched.
func (s *InvoiceService) Create(ctx context.Context, invoice model.Invoice) (_ *model.Invoice, err error) {
	defer observe("create", time.Now(), &err)

	invoice.ID = 0
	created, err := s.repo.Create(ctx, &invoice)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	log.Ctx(ctx).Info().Int64("invoice_id", created.ID).Msg("Invoice created")
	return created, nil
}

// GetByID returns the invoice with id, reading through the cache.
func (s *InvoiceService) GetByID(ctx context.Context, id int64) (_ *model.Invoice, err error) {
	defer observe("get_by_id", time.Now(), &err)

	key := cache.Key(s.entity, id)

	var cached model.Invoice
	hit, err := s.lookup(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find invoice %d: %w", id, err)
	}
	if invoice == nil {
		return nil, notFound(id)
	}

	if err := s.store(ctx, key, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetAll returns every invoice, reading the whole list through the cache.
// An empty list is cached like any other value.
func (s *InvoiceService) GetAll(ctx context.Context) (_ []model.Invoice, err error) {
	defer observe("get_all", time.Now(), &err)

	key := cache.CollectionKey(s.entity)

	var cached []model.Invoice
	hit, err := s.lookup(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		if cached == nil {
			cached = []model.Invoice{}
		}
		return cached, nil
	}

	invoices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find invoices: %w", err)
	}
	if invoices == nil {
		invoices = []model.Invoice{}
	}

	if err := s.store(ctx, key, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Update copies the name and amount of patch onto the invoice with id,
// saves it and writes the saved record through to the cache.
func (s *InvoiceService) Update(ctx context.Context, id int64, patch model.Invoice) (_ *model.Invoice, err error) {
	defer observe("update", time.Now(), &err)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find invoice %d: %w", id, err)
	}
	if existing == nil {
		return nil, notFound(id)
	}

	existing.Apply(patch)
	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("save invoice %d: %w", id, err)
	}

	key := cache.Key(s.entity, id)
	if err := s.store(ctx, key, saved); err != nil {
		// The store already holds the new value; drop the old cached copy.
		if evictErr := s.cache.Evict(ctx, key); evictErr != nil {
			log.Ctx(ctx).Error().Err(evictErr).Str("cache_key", key).Msg("Stale cache entry left after update")
		}
		return nil, err
	}

	log.Ctx(ctx).Info().Int64("invoice_id", id).Msg("Invoice updated")
	return saved, nil
}

// Delete removes the invoice with id and evicts its cache entry.
func (s *InvoiceService) Delete(ctx context.Context, id int64) (err error) {
	defer observe("delete", time.Now(), &err)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find invoice %d: %w", id, err)
	}
	if existing == nil {
		return notFound(id)
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete invoice %d: %w", id, err)
	}

	key := cache.Key(s.entity, id)
	if err := s.cache.Evict(ctx, key); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("cache_key", key).Msg("Stale cache entry left after delete")
		return fmt.Errorf("evict %s: %w", key, err)
	}

	log.Ctx(ctx).Info().Int64("invoice_id", id).Msg("Invoice deleted")
	return nil
}

// lookup decodes the cached value of key into dst. An undecodable entry
// is evicted and reported as a miss.
func (s *InvoiceService) lookup(ctx context.Context, key string, dst any) (bool, error) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !ok {
		log.Ctx(ctx).Debug().Str("cache_key", key).Msg("Cache miss")
		return false, nil
	}

	if err := s.codec.Unmarshal(data, dst); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("cache_key", key).Str("codec", s.codec.Name()).Msg("Discarding undecodable cache entry")
		if evictErr := s.cache.Evict(ctx, key); evictErr != nil {
			log.Ctx(ctx).Warn().Err(evictErr).Str("cache_key", key).Msg("Failed to evict undecodable cache entry")
		}
		return false, nil
	}
	return true, nil
}

func (s *InvoiceService) store(ctx context.Context, key string, value any) error {
	data, err := s.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.cache.Put(ctx, key, data); err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}
	log.Ctx(ctx).Debug().Str("cache_key", key).Msg("Cache populated")
	return nil
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", ErrInvoiceNotFound, id)
}

func observe(operation string, start time.Time, errp *error) {
	result := resultSuccess
	switch {
	case *errp == nil:
	case errors.Is(*errp, ErrInvoiceNotFound):
		result = resultNotFound
	default:
		result = resultError
	}
	metrics.RecordInvoiceOperation(operation, time.Since(start), result)
}
