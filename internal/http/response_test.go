//go:build !integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/circuitbreaker"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/guttosm/invoice-service/internal/domain/model"
	"github.com/guttosm/invoice-service/internal/i18n"
	"github.com/guttosm/invoice-service/internal/middleware"
	"github.com/guttosm/invoice-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/test", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expected    dto.InvoiceRequest
		expectError bool
	}{
		{
			name:     "valid invoice",
			body:     `{"name":"invoice 1","amount":123.45}`,
			expected: dto.InvoiceRequest{Name: "invoice 1", Amount: 123.45},
		},
		{
			name:     "missing fields decode to zero values",
			body:     `{}`,
			expected: dto.InvoiceRequest{},
		},
		{
			name:        "invalid JSON",
			body:        `{"name": invalid}`,
			expectError: true,
		},
		{
			name:        "wrong type",
			body:        `{"amount":"lots"}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			req, err := BuildRequest[dto.InvoiceRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *req)
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(*ResponseBuilder)
		statusCode int
	}{
		{
			name:       "SuccessOK with invoice",
			send:       func(b *ResponseBuilder) { b.SuccessOK(model.Invoice{ID: 1, Name: "a", Amount: 2}) },
			statusCode: http.StatusOK,
		},
		{
			name:       "SuccessCreated with invoice",
			send:       func(b *ResponseBuilder) { b.SuccessCreated(model.Invoice{ID: 1, Name: "a", Amount: 2}) },
			statusCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "")

			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.statusCode, w.Code)
			var resp struct {
				Data      model.Invoice `json:"data"`
				RequestID string        `json:"request_id"`
				Timestamp string        `json:"timestamp"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, model.Invoice{ID: 1, Name: "a", Amount: 2}, resp.Data)
			assert.NotEmpty(t, resp.RequestID)
			assert.NotEmpty(t, resp.Timestamp)
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	cause := errors.New("bad id")

	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, cause)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, cause)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "Invoice id must be an integer", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)
}

func TestResponseBuilder_ServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedKey    string
	}{
		{
			name:           "invoice not found",
			err:            fmt.Errorf("%w: id 5", service.ErrInvoiceNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
			expectedKey:    i18n.ErrKeyInvoiceNotFound,
		},
		{
			name:           "open circuit",
			err:            fmt.Errorf("find invoice 5: %w", circuitbreaker.ErrCircuitOpen),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
			expectedKey:    i18n.ErrKeyServiceUnavailable,
		},
		{
			name:           "deadline exceeded",
			err:            fmt.Errorf("find invoices: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   dto.ErrCodeTimeout,
			expectedKey:    i18n.ErrKeyTimeout,
		},
		{
			name:           "any other failure",
			err:            errors.New("redis: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
			expectedKey:    i18n.ErrKeyInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "")

			NewResponseBuilder(c).ServiceError(tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, i18n.GetTranslator().Translate(tt.expectedKey, i18n.DefaultLocale), resp.Message)
			require.Len(t, c.Errors, 1)
		})
	}
}
