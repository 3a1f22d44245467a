package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/samber/lo"
)

type contextKey string

const claimsKey contextKey = "userClaims"

var errNoClaims = errors.New("no user claims in context")

// AuthMiddleware validates the Bearer token and stores the claims in the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			config.Error(w, r, apperror.New(apperror.Unauthorized, "no token provided"))
			return
		}

		claims, err := ValidateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			config.Error(w, r, apperror.Wrap(apperror.Unauthorized, "invalid or expired token", err))
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole narrows the authenticated principal to one of the allowed
// roles before the handler runs. Must be mounted after AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := GetUserClaimsFromContext(r.Context())
			if err != nil {
				config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
				return
			}
			if !lo.Contains(roles, claims.Role) {
				config.Error(w, r, apperror.New(apperror.Forbidden, "insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserClaimsFromContext(ctx context.Context) (*UserClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*UserClaims)
	if !ok || claims == nil {
		return nil, errNoClaims
	}
	return claims, nil
}

// CanAccessStudent reports whether the principal may act on the given
// student's data: admins always, students only on themselves.
func CanAccessStudent(claims *UserClaims, studentID string) bool {
	if claims.Role == RoleAdmin {
		return true
	}
	return claims.Role == RoleStudent && claims.UserID == studentID
}
