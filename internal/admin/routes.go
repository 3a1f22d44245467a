package admin

import "github.com/go-chi/chi/v5"

func StatsRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/overview", h.Overview)
	r.Get("/student-results/{studentId}", h.StudentDetail)

	return r
}
