package booking

import (
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Get("/counselors", h.ListCounselors)
	r.Get("/slots", h.OpenSlots)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleStudent))
		r.Post("/", h.Book)
		r.Get("/mine", h.MyBookings)
		r.Delete("/{id}", h.Cancel)
	})

	return r
}

func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/counselors", h.CreateCounselor)
	r.Put("/counselors/{id}", h.UpdateCounselor)
	r.Delete("/counselors/{id}", h.DeleteCounselor)
	r.Post("/slots", h.CreateSlot)

	return r
}
