// Package metrics collects and exposes Prometheus metrics for the accounts
// service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the recording surface used by HTTP middleware and
// background workers.
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordRateLimited(route string)
	SetStorageUp(up bool)
}

// Collector is the Prometheus backed MetricsCollector.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	rateLimited  *prometheus.CounterVec
	storageUp    prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_http_requests_total",
			Help: "Number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "accounts_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_http_rate_limited_total",
			Help: "Number of requests rejected by the rate limiter.",
		}, []string{"route"}),
		storageUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "accounts_storage_up",
			Help: "1 when the last storage ping succeeded, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.rateLimited,
		c.storageUp,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordRateLimited(route string) {
	c.rateLimited.WithLabelValues(route).Inc()
}

func (c *Collector) SetStorageUp(up bool) {
	if up {
		c.storageUp.Set(1)
		return
	}
	c.storageUp.Set(0)
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop returns a MetricsCollector that records nothing.
func Nop() MetricsCollector {
	return nopCollector{}
}

type nopCollector struct{}

func (nopCollector) RecordHTTPRequest(string, string, int, time.Duration) {}
func (nopCollector) RecordRateLimited(string)                              {}
func (nopCollector) SetStorageUp(bool)                                     {}
