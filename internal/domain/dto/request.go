// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model.
package dto

import "github.com/guttosm/invoice-service/internal/domain/model"

// InvoiceRequest represents the JSON body accepted by the create and update endpoints.
// Any id sent by the client is ignored: ids are assigned by the store on create
// and taken from the path on update.
//
// @Description Invoice fields accepted on create and update
// @Example {"name": "invoice 1", "amount": 123.45}
type InvoiceRequest struct {
	// ID is accepted for compatibility with clients that echo the full record.
	ID *int64 `json:"id,omitempty" swaggerignore:"true"`
	// Name is free text.
	Name string `json:"name" example:"invoice 1"`
	// Amount is the monetary value of the invoice.
	Amount float64 `json:"amount" example:"123.45"`
} // @name InvoiceRequest

// ToModel converts the request into an Invoice without an id.
func (r InvoiceRequest) ToModel() model.Invoice {
	return model.Invoice{
		Name:   r.Name,
		Amount: r.Amount,
	}
}

// DeleteInvoiceResponse is returned by the delete endpoint.
type DeleteInvoiceResponse struct {
	Message string `json:"message" example:"Invoice with id: 2 Deleted !"`
} // @name DeleteInvoiceResponse
