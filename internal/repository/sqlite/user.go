package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/worktime/timetrack-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) take(ctx context.Context, query string, args ...interface{}) (user.User, error) {
	var m userModel
	err := getDB(ctx, r.db).Where(query, args...).Order("created_at, id").Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return m.toDomain(), nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	m := newUserModel(newUser)
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return m.toDomain(), nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.take(ctx, "id = ?", id)
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.take(ctx, "username_key = ?", user.NormalizeUsername(username))
}

// GetByGoogleID implements user.UserRepository.
func (r *userRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	if googleID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return r.take(ctx, "google_id = ?", googleID)
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&userModel{}).Where("username_key = ?", user.NormalizeUsername(username)).Count(&count).Error
	return count > 0, err
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	var models []userModel
	if err := getDB(ctx, r.db).Order("username").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	users := make([]user.User, 0, len(models))
	for _, m := range models {
		users = append(users, m.toDomain())
	}
	return users, nil
}

// Update implements user.UserRepository. The password hash and role are left untouched.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	result := getDB(ctx, r.db).Model(&userModel{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"username":        u.Username,
		"username_key":    user.NormalizeUsername(u.Username),
		"email":           u.Email,
		"full_name":       u.FullName,
		"phone":           u.Phone,
		"employment_type": u.EmploymentType,
		"job_title":       u.JobTitle,
		"is_active":       u.IsActive,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return r.GetByID(ctx, u.ID)
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result := getDB(ctx, r.db).Model(&userModel{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// LinkGoogle implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogle(ctx context.Context, userID, googleID string) error {
	result := getDB(ctx, r.db).Model(&userModel{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"google_id":  googleID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return user.ErrGoogleAccountInUse
		}
		return fmt.Errorf("link google account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
