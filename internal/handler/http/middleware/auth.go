package middleware

import (
	"net/http"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/auth"
	"github.com/andamio-hr/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose token is missing, is not an access
// token, or carries no user identity. It runs after jwtauth.Verifier, which
// already checked the signature and expiry.
func AuthRequired() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Refresh tokens only pass through POST /auth/refresh; every
			// protected route needs an access token with a subject.
			if typ, _ := claims["type"].(string); typ != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if id, _ := claims["user_id"].(string); id == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
