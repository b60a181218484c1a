package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/invoice-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// invoiceSequence is the counters document holding the last invoice id.
const invoiceSequence = "invoice"

// InvoiceRepository stores invoices in MongoDB. Ids are integers taken
// from a counters document so they match the relational backends.
type InvoiceRepository struct {
	db       *MongoDB
	invoices *mongo.Collection
	counters *mongo.Collection
}

// NewInvoiceRepository creates a new MongoDB invoice repository.
func NewInvoiceRepository(db *MongoDB) *InvoiceRepository {
	return &InvoiceRepository{
		db:       db,
		invoices: db.Invoices,
		counters: db.Counters,
	}
}

func (r *InvoiceRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": invoiceSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next invoice id: %w", err)
	}
	return counter.Seq, nil
}

// Create inserts invoice with a freshly assigned id.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	created := *invoice
	created.ID = id
	if _, err := r.invoices.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByID returns the invoice with id, or nil when there is none.
func (r *InvoiceRepository) FindByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.invoices.FindOne(ctx, bson.M{"_id": id}).Decode(&invoice)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindAll returns all invoices ordered by id.
func (r *InvoiceRepository) FindAll(ctx context.Context) ([]model.Invoice, error) {
	cursor, err := r.invoices.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	invoices := make([]model.Invoice, 0)
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save replaces the invoice document, inserting it when missing.
func (r *InvoiceRepository) Save(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	_, err := r.invoices.ReplaceOne(
		ctx,
		bson.M{"_id": invoice.ID},
		invoice,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	saved := *invoice
	return &saved, nil
}

// Delete removes the invoice document.
func (r *InvoiceRepository) Delete(ctx context.Context, invoice *model.Invoice) error {
	_, err := r.invoices.DeleteOne(ctx, bson.M{"_id": invoice.ID})
	return err
}

// Ping checks the MongoDB connection.
func (r *InvoiceRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
