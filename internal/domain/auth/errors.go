package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("invalid or missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrOAuthDisabled            = errors.New("oauth login is not configured")
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
	ErrStateCookieEmpty         = errors.New("state cookie is empty")
	ErrStateParamEmpty          = errors.New("state parameter is empty")
	ErrStateMismatch            = errors.New("state mismatch")
	ErrCodeValueEmpty           = errors.New("code value is empty")
	ErrGoogleAccountNotLinked   = errors.New("google account is not linked to any user")
	ErrGoogleSubjectMissing     = errors.New("google profile has no account id")
)
