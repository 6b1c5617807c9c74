package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health/", h.getHealth)
	})

	// vault operations require a valid service token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/v1/tokens", h.storeToken)
		r.Get("/api/v1/tokens", h.getToken)
		r.Get("/api/v1/tokens/lookup", h.lookupToken)
	})

	return router
}
