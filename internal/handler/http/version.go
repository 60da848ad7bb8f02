package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)
	if commit := buildInfo.BuildCommit(); commit != "" {
		w.Header().Set("X-Build-Commit", commit)
	}
	if date := buildInfo.BuildDate(); date != "" {
		w.Header().Set("X-Build-Date", date)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
