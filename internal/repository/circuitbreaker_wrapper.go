package repository

import (
	"context"

	"github.com/guttosm/invoice-service/internal/circuitbreaker"
	"github.com/guttosm/invoice-service/internal/domain/model"
	"github.com/guttosm/invoice-service/internal/metrics"
)

// InvoiceRepositoryWithCircuitBreaker wraps an invoice store with circuit
// breaker protection and per-operation metrics. An open circuit is reported
// as circuitbreaker.ErrCircuitOpen.
type InvoiceRepositoryWithCircuitBreaker struct {
	repo           InvoiceRepositoryInterface
	backend        string
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewInvoiceRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewInvoiceRepositoryWithCircuitBreaker(repo InvoiceRepositoryInterface, backend string, cb *circuitbreaker.CircuitBreaker) *InvoiceRepositoryWithCircuitBreaker {
	return &InvoiceRepositoryWithCircuitBreaker{
		repo:           repo,
		backend:        backend,
		circuitBreaker: cb,
	}
}

func (r *InvoiceRepositoryWithCircuitBreaker) execute(ctx context.Context, operation string, fn func() error) error {
	err := r.circuitBreaker.Execute(ctx, fn)
	metrics.RecordStoreOperation(r.backend, operation, err)
	return err
}

// Create creates an invoice with circuit breaker protection.
func (r *InvoiceRepositoryWithCircuitBreaker) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	var result *model.Invoice
	err := r.execute(ctx, "create", func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, invoice)
		return cbErr
	})
	return result, err
}

// FindByID loads an invoice with circuit breaker protection.
func (r *InvoiceRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var result *model.Invoice
	err := r.execute(ctx, "find_by_id", func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindAll loads all invoices with circuit breaker protection.
func (r *InvoiceRepositoryWithCircuitBreaker) FindAll(ctx context.Context) ([]model.Invoice, error) {
	var result []model.Invoice
	err := r.execute(ctx, "find_all", func() error {
		var cbErr error
		result, cbErr = r.repo.FindAll(ctx)
		return cbErr
	})
	return result, err
}

// Save upserts an invoice with circuit breaker protection.
func (r *InvoiceRepositoryWithCircuitBreaker) Save(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	var result *model.Invoice
	err := r.execute(ctx, "save", func() error {
		var cbErr error
		result, cbErr = r.repo.Save(ctx, invoice)
		return cbErr
	})
	return result, err
}

// Delete removes an invoice with circuit breaker protection.
func (r *InvoiceRepositoryWithCircuitBreaker) Delete(ctx context.Context, invoice *model.Invoice) error {
	return r.execute(ctx, "delete", func() error {
		return r.repo.Delete(ctx, invoice)
	})
}

// Ping bypasses the circuit breaker so readiness reflects the backend itself.
func (r *InvoiceRepositoryWithCircuitBreaker) Ping(ctx context.Context) error {
	return r.repo.Ping(ctx)
}

// Backend returns the wrapped backend name.
func (r *InvoiceRepositoryWithCircuitBreaker) Backend() string {
	return r.backend
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *InvoiceRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
