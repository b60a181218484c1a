package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/guttosm/invoice-service/internal/domain/model"
)

// InvoiceSQLRepository stores invoices in tbl_invoice on Postgres or SQLite.
type InvoiceSQLRepository struct {
	db *SQLDB

	insertQuery   string
	findByIDQuery string
	findAllQuery  string
	upsertQuery   string
	deleteQuery   string
}

// NewInvoiceSQLRepository creates a repository on an open SQLDB.
func NewInvoiceSQLRepository(db *SQLDB) *InvoiceSQLRepository {
	d := db.Dialect
	return &InvoiceSQLRepository{
		db:            db,
		insertQuery:   d.Rebind(`INSERT INTO tbl_invoice (name, amount) VALUES (?, ?) RETURNING invoiceid`),
		findByIDQuery: d.Rebind(`SELECT invoiceid, name, amount FROM tbl_invoice WHERE invoiceid = ?`),
		findAllQuery:  `SELECT invoiceid, name, amount FROM tbl_invoice ORDER BY invoiceid`,
		upsertQuery: d.Rebind(`INSERT INTO tbl_invoice (invoiceid, name, amount) VALUES (?, ?, ?)
ON CONFLICT (invoiceid) DO UPDATE SET name = excluded.name, amount = excluded.amount`),
		deleteQuery: d.Rebind(`DELETE FROM tbl_invoice WHERE invoiceid = ?`),
	}
}

// Create inserts invoice and returns it with the generated id.
func (r *InvoiceSQLRepository) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	created := *invoice
	if err := r.db.DB.QueryRowContext(ctx, r.insertQuery, invoice.Name, invoice.Amount).Scan(&created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByID returns the invoice with id, or nil when there is none.
func (r *InvoiceSQLRepository) FindByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.DB.QueryRowContext(ctx, r.findByIDQuery, id).Scan(&invoice.ID, &invoice.Name, &invoice.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindAll returns all invoices ordered by id.
func (r *InvoiceSQLRepository) FindAll(ctx context.Context) ([]model.Invoice, error) {
	rows, err := r.db.DB.QueryContext(ctx, r.findAllQuery)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	invoices := make([]model.Invoice, 0)
	for rows.Next() {
		var invoice model.Invoice
		if err := rows.Scan(&invoice.ID, &invoice.Name, &invoice.Amount); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

// Save upserts the invoice row.
func (r *InvoiceSQLRepository) Save(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	if _, err := r.db.DB.ExecContext(ctx, r.upsertQuery, invoice.ID, invoice.Name, invoice.Amount); err != nil {
		return nil, err
	}
	saved := *invoice
	return &saved, nil
}

// Delete removes the invoice row.
func (r *InvoiceSQLRepository) Delete(ctx context.Context, invoice *model.Invoice) error {
	_, err := r.db.DB.ExecContext(ctx, r.deleteQuery, invoice.ID)
	return err
}

// Ping checks the database connection.
func (r *InvoiceSQLRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
