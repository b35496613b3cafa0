package user

import (
	"context"
)

type UserService interface {
	GetMe(ctx context.Context, identity Identity) (UserResponse, error)
	UpdateAccount(ctx context.Context, identity Identity, req UpdateAccountRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, identity Identity, req ChangePasswordRequest) error
}
