package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/MKhiriev/go-accounts/internal/service"
)

type Handler struct {
	services *service.Services

	metrics       metrics.MetricsCollector
	metricsScrape http.Handler
	limiter       *RateLimiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics.Nop(),
		logger:   logger,
	}
}

// WithMetrics records request metrics into collector and serves scrape on
// GET /metrics when it is not nil.
func (h *Handler) WithMetrics(collector metrics.MetricsCollector, scrape http.Handler) *Handler {
	if collector != nil {
		h.metrics = collector
	}
	h.metricsScrape = scrape
	return h
}

// WithRateLimiter applies limiter to the write routes.
func (h *Handler) WithRateLimiter(limiter *RateLimiter) *Handler {
	h.limiter = limiter
	return h
}

// WithRequestTimeout cancels each request's context after d. Zero disables it.
func (h *Handler) WithRequestTimeout(d time.Duration) *Handler {
	h.requestTimeout = d
	return h
}

// Close stops background work owned by the handler.
func (h *Handler) Close() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}
