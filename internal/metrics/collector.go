// Package metrics holds the prometheus instruments exported by catalogd.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "catalog"
	subsystem = "api"
)

// Collector holds all metrics for the catalog server.
type Collector struct {
	gatherer prometheus.Gatherer

	// HTTP
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// Catalog
	conflicts *prometheus.CounterVec
	resets    prometheus.Counter
	products  prometheus.Gauge
}

// NewCollector registers the catalog metrics on reg. gatherer is used by
// Handler; pass the same registry for both.
func NewCollector(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		gatherer: gatherer,

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"route", "method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),

		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "param_conflicts_total",
			Help:      "Total number of parameter type conflicts",
		}, []string{"operation"}),
		resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Total number of catalog resets",
		}),
		products: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products",
			Help:      "Number of products in the catalog",
		}),
	}
}

// NewRegistry returns a collector backed by a fresh registry.
func NewRegistry() *Collector {
	reg := prometheus.NewRegistry()
	return NewCollector(reg, reg)
}

// ObserveRequest records one handled HTTP request.
func (c *Collector) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	c.requests.WithLabelValues(route, method, code).Inc()
	c.requestDuration.WithLabelValues(route, method, code).Observe(elapsed.Seconds())
}

// Conflict operations.
const (
	OpAddParam    = "add_param"
	OpUpdateParam = "update_param"
)

// RecordConflict counts a rejected param type.
func (c *Collector) RecordConflict(operation string) {
	c.conflicts.WithLabelValues(operation).Inc()
}

// RecordReset counts a catalog reset.
func (c *Collector) RecordReset() {
	c.resets.Inc()
}

// SetProducts updates the product gauge.
func (c *Collector) SetProducts(n int) {
	c.products.Set(float64(n))
}

// Handler serves the gathered metrics in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
