package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.metrics, "a no-op collector must be installed by default")
	assert.Nil(t, h.limiter)
	assert.Nil(t, h.metricsScrape)
}

func TestNewHandler_StoresServicesAndLogger(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	scrape := metrics.Handler(reg)

	h := NewHandler(&service.Services{}, logger.Nop()).WithMetrics(collector, scrape)

	assert.Equal(t, collector, h.metrics)
	assert.NotNil(t, h.metricsScrape)
}

func TestWithMetrics_NilCollectorKeepsNop(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop()).WithMetrics(nil, http.NotFoundHandler())

	assert.NotNil(t, h.metrics)
}

func TestClose_StopsLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	h := NewHandler(&service.Services{}, logger.Nop()).WithRateLimiter(limiter)

	h.Close()

	select {
	case <-limiter.stopCh:
	default:
		t.Fatal("limiter must be stopped")
	}
	// second Close must not panic
	assert.NotPanics(t, h.Close)
}

func TestWithRequestTimeout(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop()).WithRequestTimeout(2 * time.Second)

	assert.Equal(t, 2*time.Second, h.requestTimeout)
}
