package user

import (
	"strings"

	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	EmploymentType string `json:"employment_type"`
	JobTitle       string `json:"job_title"`
	IsActive       bool   `json:"is_active"`
	Role           string `json:"role"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// UserSummary is the admin listing row
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UpdateAccountRequest represents a partial self-service update; nil fields are left untouched.
type UpdateAccountRequest struct {
	Username       *string `json:"username,omitempty"`
	FullName       *string `json:"full_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, numbers, dots, underscores, hyphens or @",
		})
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		} else if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must contain 6-20 digits",
		})
	}

	if r.EmploymentType != nil && len(*r.EmploymentType) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must not exceed 100 characters",
		})
	}

	if r.JobTitle != nil && len(*r.JobTitle) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyTo copies the provided fields onto u.
func (r *UpdateAccountRequest) ApplyTo(u *User) {
	if r.Username != nil {
		u.Username = strings.TrimSpace(*r.Username)
	}
	if r.FullName != nil {
		u.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		u.Email = strings.TrimSpace(*r.Email)
	}
	if r.Phone != nil {
		u.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.EmploymentType != nil {
		u.EmploymentType = *r.EmploymentType
	}
	if r.JobTitle != nil {
		u.JobTitle = *r.JobTitle
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	} else if len(r.NewPassword) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
