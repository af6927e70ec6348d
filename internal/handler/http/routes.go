package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withCORS(), withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/jwt/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getCurrentUser)
		r.Patch("/users/me", h.updateCurrentUser)
		r.Get("/users/{id}", h.getUser)
		r.Post("/users/{id}/avatar", h.uploadAvatar)
		r.Post("/users/{id}/avatar/", h.uploadAvatar)

		r.Post("/contacts", h.createContact)
		r.Post("/contacts/", h.createContact)
		r.Get("/contacts", h.listContacts)
		r.Get("/contacts/", h.listContacts)
		r.Get("/contacts/{id}", h.getContact)
		r.Put("/contacts/{id}", h.updateContact)
		r.Delete("/contacts/{id}", h.deleteContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
