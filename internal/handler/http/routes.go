package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// not gzipped: promhttp negotiates its own encoding
	router.Get("/ping", h.ping)
	if h.metricsScrape != nil {
		router.Method(http.MethodGet, "/metrics", h.metricsScrape)
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/users", h.findUser)
		r.Get("/api/users/{id}", h.getUser)
		r.Get("/api/groups/{id}", h.getGroup)

		// write routes are rate limited per client
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/api/users", h.createUser)
			r.Put("/api/users/{id}", h.updateUser)
			r.Delete("/api/users/{id}", h.deleteUser)
			r.Post("/api/groups", h.createGroup)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
