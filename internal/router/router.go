package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/careerclarity/careerclarity-api/internal/admin"
	"github.com/careerclarity/careerclarity-api/internal/assessment"
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/careerclarity/careerclarity-api/internal/booking"
	"github.com/careerclarity/careerclarity-api/internal/career"
	"github.com/careerclarity/careerclarity-api/internal/college"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/careerclarity/careerclarity-api/internal/institute"
	"github.com/careerclarity/careerclarity-api/internal/middlewares"
	"github.com/careerclarity/careerclarity-api/internal/notification"
	"github.com/careerclarity/careerclarity-api/internal/student"
)

type RouterConfig struct {
	StudentHandler      *student.Handler
	InstituteHandler    *institute.Handler
	AdminHandler        *admin.Handler
	AssessmentHandler   *assessment.Handler
	CareerHandler       *career.Handler
	CollegeHandler      *college.Handler
	BookingHandler      *booking.Handler
	NotificationHandler *notification.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/students", student.Routes(cfg.StudentHandler))
	r.Mount("/institutes", institute.Routes(cfg.InstituteHandler))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/admin/login", cfg.AdminHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/assessment", assessment.Routes(cfg.AssessmentHandler))
	r.Mount("/careers", career.Routes(cfg.CareerHandler))
	r.Mount("/colleges", college.Routes(cfg.CollegeHandler))
	r.Mount("/bookings", booking.Routes(cfg.BookingHandler))
	r.Mount("/notifications", notification.Routes(cfg.NotificationHandler))

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Mount("/students", student.AdminRoutes(cfg.StudentHandler))
		r.Mount("/institutes", institute.AdminRoutes(cfg.InstituteHandler))
		r.Mount("/assessment", assessment.AdminRoutes(cfg.AssessmentHandler))
		r.Mount("/careers", career.AdminRoutes(cfg.CareerHandler))
		r.Mount("/colleges", college.AdminRoutes(cfg.CollegeHandler))
		r.Mount("/bookings", booking.AdminRoutes(cfg.BookingHandler))
		r.Mount("/notifications", notification.AdminRoutes(cfg.NotificationHandler))
		r.Mount("/stats", admin.StatsRoutes(cfg.AdminHandler))
	})

	return r
}
