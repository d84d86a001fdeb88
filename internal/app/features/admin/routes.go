// internal/app/features/admin/routes.go
package admin

import (
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, m *auth.Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(m.RequireAdmin)

	r.Get("/is-admin", h.HandleIsAdmin)
	r.Get("/users", h.HandleListUsers)
	r.Get("/users/{id}", h.HandleGetUser)
	r.Post("/users/{id}", h.HandleUpdateRole)

	return r
}
