package admin

import (
	"context"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
)

// AdminService manages any user's records without ownership filtering.
// Callers are expected to have passed the admin capability gate.
type AdminService interface {
	ListUsers(ctx context.Context) ([]user.UserSummary, error)
	ListWorkLogsFor(ctx context.Context, userID string) ([]worklog.WorkLogResponse, error)
	ListAbsencesFor(ctx context.Context, userID string) ([]absence.AbsenceRecordResponse, error)
	UpdateWorkLog(ctx context.Context, id int64, req worklog.WorkLogRequest) (worklog.WorkLogResponse, error)
	DeleteWorkLog(ctx context.Context, id int64) error
	UpdateAbsence(ctx context.Context, id int64, req absence.AbsenceRequest) (absence.AbsenceRecordResponse, error)
	DeleteAbsence(ctx context.Context, id int64) error
}
