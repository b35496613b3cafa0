package auth

import (
	"context"

	"github.com/worktime/timetrack-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle signs in the account previously linked to the Google subject googleID.
	LoginWithGoogle(ctx context.Context, googleID string) (TokenResponse, error)
	// LinkGoogle binds the Google subject googleID to the authenticated caller.
	LinkGoogle(ctx context.Context, identity user.Identity, googleID string) error
	EnsureAdmin(ctx context.Context, req BootstrapAdminRequest) error
}
