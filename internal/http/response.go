package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/circuitbreaker"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/guttosm/invoice-service/internal/i18n"
	"github.com/guttosm/invoice-service/internal/middleware"
	"github.com/guttosm/invoice-service/internal/service"
)

// ResponseBuilder writes the success and error envelopes for one request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with a translated ErrorResponse. err, when set, is attached
// to the gin context for the error handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}

	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))

	b.c.AbortWithStatusJSON(statusCode, resp)
}

// ServiceError maps an error returned by the invoice service to a response.
// Only a missing invoice is a client error; store and cache failures are 500s.
func (b *ResponseBuilder) ServiceError(err error) {
	switch {
	case errors.Is(err, service.ErrInvoiceNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyInvoiceNotFound, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusInternalServerError, i18n.ErrKeyServiceUnavailable, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// BuildRequest decodes the JSON body of c into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
