package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrGoogleAccountInUse     = errors.New("google account is linked to another user")
)
