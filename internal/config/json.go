package config

import (
	"encoding/json"
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// Error renders err according to the apperror mapping. Unexpected errors are
// logged with the request context and surfaced as a generic 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if apperror.KindOf(err) == apperror.Internal {
		WithContext(r.Context()).WithError(err).Error("unexpected error")
	}
	JSON(w, apperror.Status(err), map[string]string{
		"message": apperror.Message(err),
	})
}
