// internal/app/features/users/routes.go
package users

import (
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, m *auth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.HandleGetByID)

	r.Group(func(r chi.Router) {
		r.Use(m.RequireAuth)
		r.Get("/username/{username}", h.HandleGetByUsername)
		r.Put("/{id}", h.HandleUpdate)
	})

	r.Group(func(r chi.Router) {
		r.Use(m.RequireAdmin)
		r.Delete("/{id}", h.HandleDelete)
	})

	return r
}
