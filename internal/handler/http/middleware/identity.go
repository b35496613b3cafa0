package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/pkg/jwt"
)

type identityKey struct{}

// ResolveIdentity reads the bearer token from r and returns the verified caller.
// Every failure collapses into auth.ErrUnauthenticated.
func ResolveIdentity(tokens jwt.Service, r *http.Request) (user.Identity, error) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		return user.Identity{}, auth.ErrUnauthenticated
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		return user.Identity{}, auth.ErrUnauthenticated
	}

	return claims.Identity(), nil
}

func WithIdentity(ctx context.Context, identity user.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(user.Identity)
	if !ok || identity.UserID == "" {
		return user.Identity{}, false
	}
	return identity, true
}
