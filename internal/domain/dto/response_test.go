//go:build !integration

package dto

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeNotFound, "Invoice Not Found").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeNotFound, err.Error)
	assert.Equal(t, "Invoice Not Found", err.Message)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
		{http.StatusServiceUnavailable, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "test message")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "test message", err.Message)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}
