package worklog

import (
	"time"

	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

// WorkLogRequest is the body of both create and update; every field is overwritten on update.
type WorkLogRequest struct {
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`

	// Parsed values, set by Validate
	date       time.Time
	startTime  string
	endTime    string
	breakStart *string
	breakEnd   *string
}

func (r *WorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	// Date
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

	// Shift bounds
	startOK := r.parseRequiredClock("start_time", r.StartTime, &r.startTime, &errs)
	endOK := r.parseRequiredClock("end_time", r.EndTime, &r.endTime, &errs)
	if startOK && endOK && r.endTime <= r.startTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	// Break window
	r.breakStart, r.breakEnd = nil, nil
	hasBreakStart := r.BreakStart != nil && !validator.IsEmpty(*r.BreakStart)
	hasBreakEnd := r.BreakEnd != nil && !validator.IsEmpty(*r.BreakEnd)
	switch {
	case hasBreakStart && hasBreakEnd:
		var bs, be string
		bsOK := r.parseRequiredClock("break_start", *r.BreakStart, &bs, &errs)
		beOK := r.parseRequiredClock("break_end", *r.BreakEnd, &be, &errs)
		if bsOK && beOK {
			if be <= bs {
				errs = append(errs, validator.ValidationError{
					Field:   "break_end",
					Message: "break_end must be after break_start",
				})
			} else if startOK && endOK && (bs < r.startTime || be > r.endTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "break_start",
					Message: "break must lie within start_time and end_time",
				})
			}
			r.breakStart, r.breakEnd = &bs, &be
		}
	case hasBreakStart:
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break_end is required when break_start is set",
		})
	case hasBreakEnd:
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start is required when break_end is set",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *WorkLogRequest) parseRequiredClock(field, value string, dst *string, errs *validator.ValidationErrors) bool {
	if validator.IsEmpty(value) {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
		return false
	}
	clock, ok := validator.ParseClock(value)
	if !ok {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be in HH:MM or HH:MM:SS format",
		})
		return false
	}
	*dst = clock
	return true
}

// ApplyTo overwrites the shift fields of w with the validated request values.
// Validate must have succeeded first.
func (r *WorkLogRequest) ApplyTo(w *WorkLog) {
	w.Date = r.date
	w.StartTime = r.startTime
	w.EndTime = r.endTime
	w.BreakStart = r.breakStart
	w.BreakEnd = r.breakEnd
}

type WorkLogResponse struct {
	ID         int64   `json:"id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}
