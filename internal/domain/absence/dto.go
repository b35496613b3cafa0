package absence

import (
	"strings"
	"time"

	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

type AbsenceRequest struct {
	Date        string  `json:"date"`
	AbsenceType string  `json:"absence_type"`
	Description *string `json:"description,omitempty"`

	date time.Time
}

func (r *AbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.date = date
	}

	// Lengths are checked on the trimmed values ApplyTo stores
	if absenceType := strings.TrimSpace(r.AbsenceType); absenceType == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type is required",
		})
	} else if len(absenceType) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type must not exceed 100 characters",
		})
	}

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the date set by a successful Validate.
func (r *AbsenceRequest) ParsedDate() time.Time {
	return r.date
}

// ApplyTo overwrites date, type and description of a; a missing description becomes "".
func (r *AbsenceRequest) ApplyTo(a *AbsenceRecord) {
	a.Date = r.date
	a.AbsenceType = strings.TrimSpace(r.AbsenceType)
	a.Description = ""
	if r.Description != nil {
		a.Description = *r.Description
	}
}

type AbsenceRecordResponse struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	AbsenceType string `json:"absence_type"`
	Description string `json:"description"`
}

type AbsenceTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *AbsenceTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if name := strings.TrimSpace(r.Name); name == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceTypeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
