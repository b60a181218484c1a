package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/cache"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/guttosm/invoice-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.RequestID)
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// runInvoiceScenario creates five invoices, updates id 3, deletes id 2 and
// checks what every endpoint reports afterwards.
func runInvoiceScenario(t *testing.T, router http.Handler, c cache.Cache) {
	t.Helper()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		body := `{"name":"invoice ` + strconv.Itoa(i) + `","amount":` + strconv.Itoa(i*100) + `}`
		w := perform(router, http.MethodPost, "/api/invoice/", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decodeData[model.Invoice](t, w)
		assert.Equal(t, int64(i), created.ID)
	}

	w := perform(router, http.MethodGet, "/api/invoice/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Invoice{ID: 3, Name: "invoice 3", Amount: 300}, decodeData[model.Invoice](t, w))
	_, hit, err := c.Get(ctx, cache.Key(model.InvoiceEntity, 3))
	require.NoError(t, err)
	assert.True(t, hit, "read populates the cache")

	w = perform(router, http.MethodPut, "/api/invoice/3", `{"id":3,"name":"invoice 33","amount":444.34}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Invoice{ID: 3, Name: "invoice 33", Amount: 444.34}, decodeData[model.Invoice](t, w))

	w = perform(router, http.MethodGet, "/api/invoice/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Invoice{ID: 3, Name: "invoice 33", Amount: 444.34}, decodeData[model.Invoice](t, w))

	w = perform(router, http.MethodGet, "/api/invoice/2", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodDelete, "/api/invoice/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Invoice with id: 2 Deleted !", decodeData[struct {
		Message string `json:"message"`
	}](t, w).Message)
	_, hit, err = c.Get(ctx, cache.Key(model.InvoiceEntity, 2))
	require.NoError(t, err)
	assert.False(t, hit, "delete evicts the cache entry")

	assert.Equal(t, http.StatusNotFound, perform(router, http.MethodGet, "/api/invoice/2", "").Code)
	assert.Equal(t, http.StatusNotFound, perform(router, http.MethodDelete, "/api/invoice/2", "").Code)
	assert.Equal(t, http.StatusNotFound, perform(router, http.MethodPut, "/api/invoice/2", `{"name":"x","amount":1}`).Code)

	w = perform(router, http.MethodGet, "/api/invoice", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeData[[]model.Invoice](t, w)
	ids := make([]int64, 0, len(list))
	for _, inv := range list {
		ids = append(ids, inv.ID)
	}
	assert.Equal(t, []int64{1, 3, 4, 5}, ids)
}
