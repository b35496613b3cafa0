package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "User"  // Regular employee, owns its records
	RoleAdmin Role = "Admin" // May view and modify every user's records
)

type User struct {
	ID             string
	Username       string
	Email          string
	FullName       string
	Phone          string
	EmploymentType string
	JobTitle       string
	IsActive       bool
	Role           Role
	PasswordHash   string
	GoogleID       string // Google account subject, empty until linked
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeUsername returns the form usernames are unique and looked up by.
func NormalizeUsername(username string) string {
	return strings.ToUpper(strings.TrimSpace(username))
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Summary returns the projection exposed on admin listings.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
	}
}

// ToResponse returns the self-service view of the user, without credential material.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		EmploymentType: u.EmploymentType,
		JobTitle:       u.JobTitle,
		IsActive:       u.IsActive,
		Role:           string(u.Role),
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}
