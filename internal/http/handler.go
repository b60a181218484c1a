package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/guttosm/invoice-service/internal/domain/model"
	"github.com/guttosm/invoice-service/internal/i18n"
)

// InvoiceService is the behaviour the handlers need from the invoice service.
type InvoiceService interface {
	Create(ctx context.Context, invoice model.Invoice) (*model.Invoice, error)
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	GetAll(ctx context.Context) ([]model.Invoice, error)
	Update(ctx context.Context, id int64, patch model.Invoice) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

// InvoiceHandler provides HTTP handlers for the invoice routes.
type InvoiceHandler struct {
	invoices InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler instance.
func NewInvoiceHandler(invoices InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// Create handles POST /api/invoice/ requests.
//
// @Summary      Create invoice
// @Description  Stores a new invoice. The id is assigned by the store; any id in the body is ignored. Supports idempotency via Idempotency-Key header.
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.InvoiceRequest true "Invoice to create"
// @Success      201 {object} dto.SuccessResponse{data=model.Invoice} "Invoice created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed body"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/invoice/ [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.InvoiceRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	created, err := h.invoices.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessCreated(created)
}

// GetAll handles GET /api/invoice/ requests.
//
// @Summary      List invoices
// @Description  Returns every invoice in id order. The list is served from the cache when present.
// @Tags         Invoices
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Invoice} "All invoices"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/invoice/ [get]
func (h *InvoiceHandler) GetAll(c *gin.Context) {
	builder := NewResponseBuilder(c)

	invoices, err := h.invoices.GetAll(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(invoices)
}

// GetByID handles GET /api/invoice/:id requests.
//
// @Summary      Get invoice
// @Description  Returns one invoice, reading through the cache.
// @Tags         Invoices
// @Produce      json
// @Param        id path int true "Invoice id"
// @Success      200 {object} dto.SuccessResponse{data=model.Invoice} "Invoice found"
// @Failure      400 {object} dto.ErrorResponse "Bad request - id is not an integer"
// @Failure      404 {object} dto.ErrorResponse "Invoice not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/invoice/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := parseID(c, builder)
	if !ok {
		return
	}

	invoice, err := h.invoices.GetByID(c.Request.Context(), id)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(invoice)
}

// Update handles PUT /api/invoice/:id requests.
//
// @Summary      Update invoice
// @Description  Replaces name and amount of an existing invoice and refreshes its cache entry. The id always comes from the path.
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path int true "Invoice id"
// @Param        request body dto.InvoiceRequest true "New invoice values"
// @Success      200 {object} dto.SuccessResponse{data=model.Invoice} "Invoice updated"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id or body"
// @Failure      404 {object} dto.ErrorResponse "Invoice not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/invoice/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := parseID(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.InvoiceRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	updated, err := h.invoices.Update(c.Request.Context(), id, req.ToModel())
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(updated)
}

// Delete handles DELETE /api/invoice/:id requests.
//
// @Summary      Delete invoice
// @Description  Removes an invoice and evicts its cache entry.
// @Tags         Invoices
// @Produce      json
// @Param        id path int true "Invoice id"
// @Success      200 {object} dto.SuccessResponse{data=dto.DeleteInvoiceResponse} "Invoice deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - id is not an integer"
// @Failure      404 {object} dto.ErrorResponse "Invoice not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/invoice/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := parseID(c, builder)
	if !ok {
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), id); err != nil {
		builder.ServiceError(err)
		return
	}

	message := i18n.GetTranslator().Translatef(i18n.SuccessKeyInvoiceDeleted, i18n.GetLocale(c), id)
	builder.SuccessOK(dto.DeleteInvoiceResponse{Message: message})
}

// parseID reads the :id path parameter and answers 400 when it is not an integer.
func parseID(c *gin.Context, builder *ResponseBuilder) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return 0, false
	}
	return id, true
}
