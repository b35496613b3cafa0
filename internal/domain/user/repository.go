package user

import (
	"context"
)

// UserRepository is the credential store. Usernames are matched on their normalized form.
// Implementations return ErrUserNotFound for missing rows, ErrUsernameTaken when the unique
// username index rejects a write and ErrGoogleAccountInUse when a Google subject is already linked.
type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	LinkGoogle(ctx context.Context, userID, googleID string) error
}
