package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "panic before writing becomes a 500 envelope",
			handler:    func(*gin.Context) { panic("invoice store exploded") },
			wantStatus: http.StatusInternalServerError,
			wantLogged: true,
		},
		{
			name: "panic after writing keeps the started response",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "partial")
				panic("late failure")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
			wantLogged: true,
		},
		{
			name:       "no panic passes through",
			handler:    func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": c.Param("id")}) },
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"7"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/api/invoice/:id", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/api/invoice/7", nil)
			req.Header.Set(RequestIDHeader, "req-recovery")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInternal, resp.Error)
				assert.Equal(t, "req-recovery", resp.RequestID)
				assert.NotEmpty(t, resp.Message)
			}

			if !tt.wantLogged {
				assert.Empty(t, buf.String())
				return
			}
			entry := lastLogLine(t, buf)
			assert.Equal(t, "error", entry["level"])
			assert.Equal(t, "req-recovery", entry["request_id"])
			assert.Equal(t, "/api/invoice/7", entry["path"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.NotEmpty(t, entry["stack"])
		})
	}
}
