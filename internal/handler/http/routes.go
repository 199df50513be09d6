package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// CORS headers are emitted only when an origin is configured. With no
	// configured origin browsers will refuse cross-origin calls, which is
	// the safe default for a private admin API.
	if h.allowedOrigin != "" {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{h.allowedOrigin},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}))
	} else {
		h.logger.Warn().Msg("allowed origin is not configured, CORS headers are disabled")
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		// routes requiring authentication
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/requests", h.listQuotes)
			r.Get("/requests/{id}", h.getQuote)
			r.Post("/requests", h.createQuote)
		})
	})

	return router
}
