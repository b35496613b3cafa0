package worklog

import (
	"context"
)

// WorkLogRepository - interface for work_logs table.
// Implementations return ErrWorkLogNotFound for missing rows.
type WorkLogRepository interface {
	Create(ctx context.Context, workLog WorkLog) (WorkLog, error)
	GetByID(ctx context.Context, id int64) (WorkLog, error)
	ListByUserID(ctx context.Context, userID string) ([]WorkLog, error)
	Update(ctx context.Context, workLog WorkLog) (WorkLog, error)
	Delete(ctx context.Context, id int64) error
}
