package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAppInfo(t *testing.T, svc service.AppInfoService) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{AppInfoService: svc},
		logger.Nop(),
	)
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h := newHandlerWithAppInfo(t, &mockAppInfoService{version: want})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("X-Build-Commit"))
}

func TestGetServerVersion_BuildHeaders(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{
		version:   "1.2.3",
		buildInfo: models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc1234"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	assert.Equal(t, "abc1234", rec.Header().Get("X-Build-Commit"))
	assert.Equal(t, "2026-10-01", rec.Header().Get("X-Build-Date"))
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	const want = "3.0.0"

	h := newHandlerWithAppInfo(t, &mockAppInfoService{version: want})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestPing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "storage reachable", want: http.StatusOK},
		{name: "storage down", err: service.ErrStorageUnavailable, want: http.StatusInternalServerError},
		{name: "wrapped failure", err: errors.Join(service.ErrStorageUnavailable, errors.New("dial")), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{HealthService: &mockHealthService{err: tt.err}}, logger.Nop())

			rec := httptest.NewRecorder()
			h.ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
