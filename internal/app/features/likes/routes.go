// internal/app/features/likes/routes.go
package likes

import (
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, m *auth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Get("/article/{article_id}", h.HandleListByArticle)
	r.Get("/user/{user_id}", h.HandleListByUser)

	r.Group(func(r chi.Router) {
		r.Use(m.RequireAuth)
		r.Post("/", h.HandleCreate)
		r.Delete("/", h.HandleDelete)
		r.Get("/liked", h.HandleLiked)
	})

	return r
}
