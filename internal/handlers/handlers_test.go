package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	router, _ := newHandlersTestRouter(t)
	rr := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Lumme API is running", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestNotFoundIsJSON(t *testing.T) {
	router, _ := newHandlersTestRouter(t)
	rr := doJSON(t, router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"success": false, "error": "Not found"}, decode(t, rr))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newHandlersTestRouter(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/1"},
		{http.MethodDelete, "/api/products/1"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPut, "/api/orders/1/status"},
		{http.MethodPost, "/api/reviews"},
	} {
		rr := doJSON(t, router, tc.method, tc.path, "bad-token", map[string]any{})
		assert.Equal(t, http.StatusUnauthorized, rr.Code, tc.method+" "+tc.path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newHandlersTestRouter(t)
	doJSON(t, router, http.MethodGet, "/api/health", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	b, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(b), `lumme_http_requests_total{method="GET",path="/api/health",status="200"}`)
}
