package assessment

import (
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Get("/tests", h.ListTests)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleStudent))
		r.Post("/start", h.Start)
		r.Get("/results", h.MyResults)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleStudent, auth.RoleAdmin))
		r.Get("/sessions/{sessionId}/question", h.NextQuestion)
		r.Post("/answers", h.SubmitAnswer)
		r.Post("/advance", h.AdvanceStage)
		r.Get("/results/{studentId}", h.StudentResults)
	})

	return r
}

func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Put("/questions/{id}", h.UpdateQuestion)
	r.Delete("/questions/{id}", h.DeleteQuestion)

	return r
}
