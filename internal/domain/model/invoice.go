// Package model defines the core domain entities for the invoice service.
package model

// InvoiceEntity is the entity name used to build cache keys and log fields.
const InvoiceEntity = "Invoice"

// Invoice is the only persisted entity of the service.
//
// @Description Invoice record
// @Example {"id": 1, "name": "invoice 1", "amount": 123.45}
type Invoice struct {
	// ID is assigned by the store on create and never changes afterwards
	ID int64 `json:"id" bson:"_id" msgpack:"id" example:"1"`
	// Name is free text
	Name string `json:"name" bson:"name" msgpack:"name" example:"invoice 1"`
	// Amount is the monetary value of the invoice
	Amount float64 `json:"amount" bson:"amount" msgpack:"amount" example:"123.45"`
} // @name Invoice

// Apply copies the mutable fields of patch onto the invoice. The id is kept.
func (i *Invoice) Apply(patch Invoice) {
	i.Name = patch.Name
	i.Amount = patch.Amount
}
