// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/invoice-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceRepositoryInterface struct {
	mock.Mock
}

func (m *MockInvoiceRepositoryInterface) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepositoryInterface) FindByID(ctx context.Context, id int64) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepositoryInterface) FindAll(ctx context.Context) ([]model.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepositoryInterface) Save(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepositoryInterface) Delete(ctx context.Context, invoice *model.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepositoryInterface) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
