package middleware

import (
	"log/slog"
	"net/http"

	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
	"github.com/worktime/timetrack-backend-go/internal/pkg/jwt"
)

func Authenticate(tokens jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			identity, err := ResolveIdentity(tokens, r)
			if err != nil {
				slog.Debug("request rejected", "path", r.URL.Path, "error", err)
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
