package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/internal/memory"
	"github.com/mesh-intelligence/catalog/internal/metrics"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	store, err := memory.New()
	require.NoError(t, err)
	return New(store, opts...)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), rec.Body.String())
	return m
}

func TestListProducts(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []types.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, 0, products[0].ProductID)
	assert.Equal(t, 1, products[1].ProductID)
	assert.Contains(t, rec.Body.String(), `{"paramId":0,"sortOrder":0,"type":"type2","min":1,"increment":2}`)
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"get product", http.MethodGet, "/products/0", "", http.StatusOK, ""},
		{"missing product", http.MethodGet, "/products/9", "", http.StatusNotFound, "Product not found"},
		{"malformed product id", http.MethodGet, "/products/abc", "", http.StatusBadRequest, "Invalid product ID"},
		{"negative attribute id", http.MethodDelete, "/products/0/attributes/-1", "", http.StatusBadRequest, "Invalid attribute ID"},
		{"create product", http.MethodPost, "/products", `{"prefix":"ghi","type":"ghi00"}`, http.StatusCreated, ""},
		{"add attribute", http.MethodPost, "/products/1/attributes", `{"attribute":"a","contract":"type2"}`, http.StatusCreated, ""},
		{"add attribute to missing product", http.MethodPost, "/products/9/attributes", `{}`, http.StatusNotFound, "Product not found"},
		{"malformed attribute body", http.MethodPost, "/products/0/attributes", `{"public":"yes"`, http.StatusBadRequest, "Unable to parse attribute"},
		{"get attribute", http.MethodGet, "/products/0/attributes/2", "", http.StatusOK, ""},
		{"update attribute", http.MethodPut, "/products/0/attributes/0", `{"online":false}`, http.StatusOK, ""},
		{"update missing attribute", http.MethodPut, "/products/0/attributes/9", `{}`, http.StatusNotFound, "Attribute not found"},
		{"delete attribute", http.MethodDelete, "/products/0/attributes/1", "", http.StatusNoContent, ""},
		{"add param", http.MethodPost, "/products/0/attributes/0/params", `{"type":"type1","code":"c3"}`, http.StatusCreated, ""},
		{"add param without type", http.MethodPost, "/products/0/attributes/0/params", `{"code":"c3"}`, http.StatusBadRequest, "Parameter type is required"},
		{"get param", http.MethodGet, "/products/0/attributes/0/params/1", "", http.StatusOK, ""},
		{"update param", http.MethodPut, "/products/0/attributes/1/params/0", `{"min":4}`, http.StatusOK, ""},
		{"update missing param", http.MethodPut, "/products/0/attributes/1/params/5", `{}`, http.StatusNotFound, "Parameter not found"},
		{"delete param", http.MethodDelete, "/products/0/attributes/2/params/0", "", http.StatusNoContent, ""},
		{"delete missing param", http.MethodDelete, "/products/0/attributes/2/params/3", "", http.StatusNotFound, "Parameter not found"},
		{"malformed param id", http.MethodDelete, "/products/0/attributes/2/params/x", "", http.StatusBadRequest, "Invalid parameter ID"},
		{"unknown route", http.MethodGet, "/nowhere", "", http.StatusNotFound, "Not Found"},
		{"healthz", http.MethodGet, "/healthz", "", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decode(t, rec)["message"])
			}
		})
	}
}

func TestAddParamConflict(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/products/0/attributes/1/params", `{"type":"type1","code":"x"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "type1", body["requested"])
	assert.Equal(t, "type2", body["expected"])
	assert.Equal(t,
		"Parameter type 'type1' is not allowed for attribute with contract 'type2'. Expected parameter type: 'type2'.",
		body["message"])

	rec = do(t, s, http.MethodGet, "/products/0/attributes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var a types.Attribute
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Len(t, a.Params, 1)
}

func TestAddParamStoresOnlyTypeFields(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/products/0/attributes/1/params",
		`{"type":"type2","min":1,"increment":2,"sortOrder":0,"code":"dropped"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"paramId":1,"sortOrder":0,"type":"type2","min":1,"increment":2}`, rec.Body.String())
}

func TestUpdateParamRetargetConflict(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPut, "/products/0/attributes/0/params/0", `{"type":"type2"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t,
		"Cannot change parameter type to 'type2' for attribute with contract 'type1'. Expected parameter type: 'type1'.",
		decode(t, rec)["message"])
}

func TestRefreshRestoresSeed(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusNoContent, do(t, s, http.MethodDelete, "/products/0/attributes/0", "").Code)
	require.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/products/0/attributes/0", "").Code)

	rec := do(t, s, http.MethodPost, "/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mock data has been reset to the initial state.", decode(t, rec)["message"])

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/products/0/attributes/0", "").Code)
}

// failingReset is a Catalog whose Reset always fails.
type failingReset struct {
	types.Catalog
}

func (failingReset) Reset() error {
	return fmt.Errorf("%w: seed: duplicate product id 0", types.ErrInternal)
}

func TestRefreshFailure(t *testing.T) {
	store, err := memory.New()
	require.NoError(t, err)
	s := New(failingReset{store})

	rec := do(t, s, http.MethodPost, "/refresh", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.Contains(t, body["error"], "duplicate product id")
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	first := do(t, s, http.MethodGet, "/healthz", "").Header().Get("X-Request-Id")
	second := do(t, s, http.MethodGet, "/healthz", "").Header().Get("X-Request-Id")
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, WithMetrics(metrics.NewRegistry(), "/metrics"))

	do(t, s, http.MethodPost, "/products/0/attributes/1/params", `{"type":"type1"}`)
	do(t, s, http.MethodPost, "/refresh", "")
	do(t, s, http.MethodPost, "/products", `{"prefix":"x"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `catalog_param_conflicts_total{operation="add_param"} 1`)
	assert.Contains(t, out, "catalog_resets_total 1")
	assert.Contains(t, out, "catalog_products 3")
	assert.Contains(t, out, `catalog_api_requests_total{method="POST",route="/refresh",status="200"} 1`)
}

func TestMetricsRouteAbsentWithoutCollector(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/metrics", "").Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0", time.Second) }()

	require.Eventually(t, func() bool { return s.Addr() != "" }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenError(t *testing.T) {
	s := newTestServer(t)
	err := s.Run(context.Background(), "not-an-address", time.Second)
	assert.Error(t, err)
}
