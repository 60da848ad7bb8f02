package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestNewCollector_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	require.NotNil(t, c)

	c.RecordHTTPRequest(http.MethodGet, "/ping", http.StatusOK, time.Millisecond)
	c.RecordRateLimited("/api/users")
	c.SetStorageUp(true)

	for _, name := range []string{
		"accounts_http_requests_total",
		"accounts_http_request_duration_seconds",
		"accounts_http_rate_limited_total",
		"accounts_storage_up",
	} {
		assert.NotNil(t, findMetric(t, reg, name), name)
	}
}

func TestRecordHTTPRequest_LabelsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest(http.MethodPost, "/api/users", http.StatusCreated, time.Millisecond)
	c.RecordHTTPRequest(http.MethodPost, "/api/users", http.StatusCreated, time.Millisecond)
	c.RecordHTTPRequest(http.MethodPost, "/api/users", http.StatusConflict, time.Millisecond)

	mf := findMetric(t, reg, "accounts_http_requests_total")
	require.NotNil(t, mf)
	require.Len(t, mf.GetMetric(), 2)

	counts := map[string]float64{}
	for _, m := range mf.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "status_code" {
				counts[l.GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(2), counts["201"])
	assert.Equal(t, float64(1), counts["409"])
}

func TestSetStorageUp_TogglesGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.SetStorageUp(true)
	mf := findMetric(t, reg, "accounts_storage_up")
	require.NotNil(t, mf)
	assert.Equal(t, float64(1), mf.GetMetric()[0].GetGauge().GetValue())

	c.SetStorageUp(false)
	mf = findMetric(t, reg, "accounts_storage_up")
	assert.Equal(t, float64(0), mf.GetMetric()[0].GetGauge().GetValue())
}

func TestHandler_ServesExposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRateLimited("/api/users")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "accounts_http_rate_limited_total"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	n := Nop()
	assert.NotPanics(t, func() {
		n.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
		n.RecordRateLimited("/")
		n.SetStorageUp(false)
	})
}
