package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Get("/api/version", h.getServerVersion)

	// session lifecycle
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Get("/api/check_session", h.checkSession)
		r.Delete("/api/logout", h.logout)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/api/recipes", h.listRecipes)
		r.Post("/api/recipes", h.createRecipe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
