package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/admin"
	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	HandleErrorWithMessage(w, err, "An unexpected error occurred")
}

// HandleErrorWithMessage is HandleError with the message used for unexpected failures.
// The underlying cause is logged, never written to the client.
func HandleErrorWithMessage(w http.ResponseWriter, err error, internalMessage string) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, auth.ErrUnauthenticated.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrOAuthDisabled):
		NotFound(w, "OAuth login is not enabled")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		BadRequest(w, "Username is already taken", map[string]string{"username": user.ErrUsernameTaken.Error()})
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrGoogleAccountInUse):
		Conflict(w, "Google account is already linked to another user")

	// WorkLog domain errors
	case errors.Is(err, worklog.ErrWorkLogNotFound):
		NotFound(w, "Work log not found")
	case errors.Is(err, worklog.ErrWorkLogAccessDenied):
		Forbidden(w, "You cannot modify this work log")
	case errors.Is(err, worklog.ErrInvalidWorkLogID):
		BadRequest(w, "Invalid work log id", nil)

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrAbsenceAccessDenied):
		Forbidden(w, "You cannot modify this absence record")
	case errors.Is(err, absence.ErrAbsenceDateConflict):
		Conflict(w, "An absence is already recorded for this date")
	case errors.Is(err, absence.ErrInvalidAbsenceID):
		BadRequest(w, "Invalid absence record id", nil)
	case errors.Is(err, absence.ErrAbsenceTypeNotFound):
		NotFound(w, "Absence type not found")
	case errors.Is(err, absence.ErrInvalidAbsenceTypeID):
		BadRequest(w, "Invalid absence type id", nil)

	// Admin domain errors
	case errors.Is(err, admin.ErrInvalidUserID):
		BadRequest(w, "Invalid user id", nil)

	// Default
	default:
		slog.Error(internalMessage, "error", err)
		InternalServerError(w, internalMessage)
	}
}
