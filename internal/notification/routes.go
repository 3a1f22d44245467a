package notification

import (
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)
	r.Use(auth.RequireRole(auth.RoleStudent, auth.RoleAdmin))

	r.Get("/", h.ListMine)
	r.Put("/{id}/read", h.MarkRead)
	r.Put("/read-all", h.MarkAllRead)

	return r
}

func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListAll)

	return r
}
