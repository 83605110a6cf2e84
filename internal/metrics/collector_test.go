package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	c := NewRegistry()

	c.ObserveRequest("/products", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	c.ObserveRequest("/products", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	c.ObserveRequest("/products/:productId", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("/products", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("/products/:productId", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.requestDuration))
}

func TestCatalogCounters(t *testing.T) {
	c := NewRegistry()

	c.RecordConflict(OpAddParam)
	c.RecordConflict(OpAddParam)
	c.RecordConflict(OpUpdateParam)
	c.RecordReset()
	c.SetProducts(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.conflicts.WithLabelValues(OpAddParam)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conflicts.WithLabelValues(OpUpdateParam)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.resets))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.products))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg, reg)
	assert.Panics(t, func() { NewCollector(reg, reg) })
}

func TestHandler(t *testing.T) {
	c := NewRegistry()
	c.RecordReset()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_resets_total 1")
}
