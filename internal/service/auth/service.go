package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
	"github.com/worktime/timetrack-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	database.Transactor
	user.UserRepository
	jwt.Service

	dummyHashOnce sync.Once
	dummyHash     []byte
}

func NewAuthService(transactor database.Transactor, userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		Transactor:     transactor,
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// compareDummy burns one bcrypt comparison so unknown usernames cost as much as wrong passwords.
func (a *AuthServiceImpl) compareDummy(password string) {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timetrack-unknown-user"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
}

func (a *AuthServiceImpl) issue(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.IssueToken(u)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	var created user.User
	err = a.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := a.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return user.ErrUsernameTaken
		}

		created, err = a.UserRepository.Create(ctx, user.User{
			ID:             id.String(),
			Username:       req.Username,
			Email:          req.Email,
			FullName:       req.FullName,
			Phone:          req.Phone,
			EmploymentType: req.EmploymentType,
			JobTitle:       req.JobTitle,
			IsActive:       req.Active(),
			Role:           user.RoleUser,
			PasswordHash:   hashed,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("user registered", "user_id", created.ID, "username", created.Username)
	return a.issue(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			a.compareDummy(req.Password)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(userData)
}

// LoginWithGoogle implements auth.AuthService. Accounts are matched on the linked Google
// subject only; the email Google reports is never used to pick an account.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleID string) (auth.TokenResponse, error) {
	if googleID == "" {
		return auth.TokenResponse{}, auth.ErrGoogleSubjectMissing
	}

	userData, err := a.GetByGoogleID(ctx, googleID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by google id: %w", err)
	}

	return a.issue(userData)
}

// LinkGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LinkGoogle(ctx context.Context, identity user.Identity, googleID string) error {
	if googleID == "" {
		return auth.ErrGoogleSubjectMissing
	}

	if err := a.UserRepository.LinkGoogle(ctx, identity.UserID, googleID); err != nil {
		return err
	}

	slog.Info("google account linked", "user_id", identity.UserID)
	return nil
}

// EnsureAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureAdmin(ctx context.Context, req auth.BootstrapAdminRequest) error {
	if req.Password == "" {
		slog.Info("admin bootstrap skipped, no admin password configured")
		return nil
	}

	return a.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := a.GetByUsername(ctx, req.Username)
		if err == nil {
			if !existing.IsAdmin() {
				slog.Warn("admin bootstrap skipped, username belongs to a regular account", "username", req.Username)
			}
			return nil
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to look up admin: %w", err)
		}

		hashed, err := hashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate user id: %w", err)
		}

		created, err := a.UserRepository.Create(ctx, user.User{
			ID:           id.String(),
			Username:     req.Username,
			Email:        req.Email,
			FullName:     req.FullName,
			IsActive:     true,
			Role:         user.RoleAdmin,
			PasswordHash: hashed,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		slog.Info("admin account created", "user_id", created.ID, "username", created.Username)
		return nil
	})
}
