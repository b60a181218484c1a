// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/invoice-service/internal/domain/model"
)

// Store backends.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// InvoiceRepositoryInterface defines the durable store operations on invoices.
type InvoiceRepositoryInterface interface {
	// Create persists invoice under a newly assigned id and returns the stored record.
	Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
	// FindByID returns (nil, nil) when no invoice has the id.
	FindByID(ctx context.Context, id int64) (*model.Invoice, error)
	// FindAll returns every invoice ordered by id.
	FindAll(ctx context.Context) ([]model.Invoice, error)
	// Save upserts invoice by id.
	Save(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
	// Delete removes invoice. Deleting an absent record is not an error.
	Delete(ctx context.Context, invoice *model.Invoice) error
	Ping(ctx context.Context) error
}
