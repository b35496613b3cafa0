package worklog

import (
	"context"

	"github.com/worktime/timetrack-backend-go/internal/domain/user"
)

type WorkLogService interface {
	Create(ctx context.Context, identity user.Identity, req WorkLogRequest) (WorkLogResponse, error)
	ListMine(ctx context.Context, identity user.Identity) ([]WorkLogResponse, error)
	Update(ctx context.Context, identity user.Identity, id int64, req WorkLogRequest) (WorkLogResponse, error)
	Delete(ctx context.Context, identity user.Identity, id int64) error
}
