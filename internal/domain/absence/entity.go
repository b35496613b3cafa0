package absence

import (
	"time"

	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

// AbsenceRecord is one day of absence. AbsenceType is a free-form tag and is
// not tied to the AbsenceType catalog.
type AbsenceRecord struct {
	ID          int64
	UserID      string
	Date        time.Time
	AbsenceType string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *AbsenceRecord) ToResponse() AbsenceRecordResponse {
	return AbsenceRecordResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.Date.Format(validator.DateLayout),
		AbsenceType: a.AbsenceType,
		Description: a.Description,
	}
}

func ToResponses(records []AbsenceRecord) []AbsenceRecordResponse {
	responses := make([]AbsenceRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses
}

// AbsenceType is an informational catalog entry, e.g. "Sick" or "Vacation".
type AbsenceType struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}

func (t *AbsenceType) ToResponse() AbsenceTypeResponse {
	return AbsenceTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}
}
