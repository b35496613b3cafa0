package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
)

type UserServiceImpl struct {
	database.Transactor
	user.UserRepository
}

func NewUserService(transactor database.Transactor, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		Transactor:     transactor,
		UserRepository: userRepository,
	}
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context, identity user.Identity) (user.UserResponse, error) {
	u, err := s.GetByID(ctx, identity.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return u.ToResponse(), nil
}

// UpdateAccount implements user.UserService.
func (s *UserServiceImpl) UpdateAccount(ctx context.Context, identity user.Identity, req user.UpdateAccountRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var updated user.User
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.GetByID(ctx, identity.UserID)
		if err != nil {
			return err
		}

		previousUsername := current.Username
		req.ApplyTo(&current)

		if user.NormalizeUsername(current.Username) != user.NormalizeUsername(previousUsername) {
			exists, err := s.ExistsByUsername(ctx, current.Username)
			if err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if exists {
				return user.ErrUsernameTaken
			}
		}

		updated, err = s.Update(ctx, current)
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return updated.ToResponse(), nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, identity user.Identity, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.GetByID(ctx, identity.UserID)
		if err != nil {
			return err
		}

		if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return auth.ErrInvalidCredentials
			}
			return fmt.Errorf("failed to verify password: %w", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		return s.UpdatePassword(ctx, current.ID, string(hashed))
	})
}
