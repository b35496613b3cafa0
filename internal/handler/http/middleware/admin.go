package middleware

import (
	"net/http"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
)

// AdminOnly must run after Authenticate.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthenticated)
			return
		}

		if !identity.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
