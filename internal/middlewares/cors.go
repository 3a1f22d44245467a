package middlewares

import (
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/rs/cors"
)

// CorsMiddleware allows the configured frontend origin with credentials.
func CorsMiddleware(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{config.GetString("CORS_ORIGIN")},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(next)
}
