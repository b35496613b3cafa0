package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
)

// requireIdentity writes a 401 and returns false when the request carries no identity.
func requireIdentity(w http.ResponseWriter, r *http.Request) (user.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthenticated)
		return user.Identity{}, false
	}
	return identity, true
}

// parseIDParam reads a positive numeric URL parameter, writing invalidErr as a 400 otherwise.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string, invalidErr error) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(w, invalidErr)
		return 0, false
	}
	return id, true
}
