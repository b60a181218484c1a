package http

import (
	"github.com/gin-gonic/gin"
)

// InvoiceRoutes registers the invoice CRUD endpoints.
type InvoiceRoutes struct {
	handler *InvoiceHandler
}

// NewInvoiceRoutes creates a new InvoiceRoutes instance.
func NewInvoiceRoutes(handler *InvoiceHandler) *InvoiceRoutes {
	return &InvoiceRoutes{handler: handler}
}

// RegisterRoutes mounts the endpoints under /invoice of rg. The collection
// answers both with and without the trailing slash.
func (r *InvoiceRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoice")

	for _, path := range []string{"", "/"} {
		invoices.POST(path, r.handler.Create)
		invoices.GET(path, r.handler.GetAll)
	}

	invoices.GET("/:id", r.handler.GetByID)
	invoices.PUT("/:id", r.handler.Update)
	invoices.DELETE("/:id", r.handler.Delete)
}
