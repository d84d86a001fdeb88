// internal/app/features/articles/routes.go
package articles

import (
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, m *auth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGetByID)

	r.Group(func(r chi.Router) {
		r.Use(m.RequireWriter)
		r.Post("/", h.HandleCreate)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})

	return r
}
