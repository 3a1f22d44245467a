package auth

import (
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Logout clears the jwt cookie for browser clients. Bearer-token clients
// simply drop the token; there is no server-side session to revoke.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
