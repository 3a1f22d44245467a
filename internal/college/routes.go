package college

import (
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleStudent))
		r.Post("/shortlist", h.Shortlist)
		r.Get("/shortlist/mine", h.ListShortlisted)
		r.Get("/shortlist/{collegeId}", h.ShortlistStatus)
		r.Delete("/shortlist/{collegeId}", h.RemoveShortlist)
	})

	return r
}

func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
