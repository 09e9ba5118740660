package middleware

import (
	"net/http"

	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !sess.IsAdmin {
			response.HandleError(w, session.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
