package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
	body   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/ping", ""},
	{http.MethodGet, "/api/version", ""},
	{http.MethodPost, "/api/users", `{"username":"a","password":"b","email":"a@b.co"}`},
	{http.MethodGet, "/api/users?username=a", ""},
	{http.MethodGet, "/api/users/u-1", ""},
	{http.MethodPut, "/api/users/u-1", `{"username":"a","password":"b","email":"a@b.co"}`},
	{http.MethodDelete, "/api/users/u-1", ""},
	{http.MethodPost, "/api/groups", `{"name":"admins"}`},
	{http.MethodGet, "/api/groups/g-1", ""},
}

func TestInit_AllRoutesRegistered(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	for _, rc := range expectedRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			var req *http.Request
			if rc.body != "" {
				req = httptest.NewRequest(rc.method, rc.path, strings.NewReader(rc.body))
			} else {
				req = httptest.NewRequest(rc.method, rc.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Less(t, rec.Code, http.StatusBadRequest, rec.Body.String())
		})
	}
}

func TestInit_UnknownRoute404(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodIs404(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	for _, rc := range []routeCase{
		{method: http.MethodPatch, path: "/api/users/u-1"},
		{method: http.MethodDelete, path: "/api/users"},
		{method: http.MethodPost, path: "/ping"},
	} {
		req := httptest.NewRequest(rc.method, rc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, rc.method+" "+rc.path)
	}
}

func TestInit_MetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	h := newTestHandler(t, nil, nil).WithMetrics(collector, metrics.Handler(reg))
	router := h.Init()

	// one API request so the counter has a sample
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/users/{id}"`)
}

func TestInit_NoMetricsEndpointWithoutScrape(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
