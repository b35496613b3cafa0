package worklog

import (
	"time"

	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

// WorkLog is one shift. StartTime, EndTime and the optional break bounds are
// clock times in "HH:MM:SS" form on Date.
type WorkLog struct {
	ID         int64
	UserID     string
	Date       time.Time
	StartTime  string
	EndTime    string
	BreakStart *string
	BreakEnd   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (w *WorkLog) ToResponse() WorkLogResponse {
	return WorkLogResponse{
		ID:         w.ID,
		UserID:     w.UserID,
		Date:       w.Date.Format(validator.DateLayout),
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
		BreakStart: w.BreakStart,
		BreakEnd:   w.BreakEnd,
	}
}

func ToResponses(logs []WorkLog) []WorkLogResponse {
	responses := make([]WorkLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, logs[i].ToResponse())
	}
	return responses
}
