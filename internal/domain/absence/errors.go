package absence

import "errors"

var (
	ErrAbsenceNotFound      = errors.New("absence record not found")
	ErrAbsenceAccessDenied  = errors.New("you cannot modify this absence record")
	ErrAbsenceDateConflict  = errors.New("an absence is already recorded for this date")
	ErrInvalidAbsenceID     = errors.New("invalid absence record id")
	ErrAbsenceTypeNotFound  = errors.New("absence type not found")
	ErrInvalidAbsenceTypeID = errors.New("invalid absence type id")
)
