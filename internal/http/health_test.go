//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
	})
	_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })
	require.True(t, cb.IsOpen())
	return cb
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := HealthCheckFunc(func(context.Context) error { return nil })
	failing := HealthCheckFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name           string
		setupHandler   func(t *testing.T) *HealthHandler
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name: "no checkers",
			setupHandler: func(*testing.T) *HealthHandler {
				return NewHealthHandler()
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "store and cache healthy",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("store", healthy)
				h.RegisterChecker("cache", healthy)
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"store": "ok", "cache": "ok"},
		},
		{
			name: "cache unreachable",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("store", healthy)
				h.RegisterChecker("cache", failing)
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"store": "ok", "cache": "connection refused"},
		},
		{
			name: "closed circuit breaker",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("store", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"store_circuit": "closed"},
		},
		{
			name: "open circuit breaker",
			setupHandler: func(t *testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("store", openBreaker(t))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"store_circuit": "open"},
		},
		{
			name: "nil registrations are ignored",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("store", nil)
				h.RegisterCircuitBreaker("store", nil)
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler(t).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_ReadinessPassesDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hasDeadline bool
	h := NewHealthHandler()
	h.RegisterChecker("store", HealthCheckFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}))

	router := gin.New()
	h.Register(router)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.True(t, hasDeadline)
}
