package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/handler/http/response"
	"github.com/staffdeck/workforce-console/internal/pkg/jwt"
)

// WithSession rebuilds the read-only session context from verified claims
// and places it on the request context for handlers and views.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		sess, err := jwt.SessionFromClaims(claims)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}
