package absence

import (
	"context"

	"github.com/worktime/timetrack-backend-go/internal/domain/user"
)

type AbsenceService interface {
	// Record
	Create(ctx context.Context, identity user.Identity, req AbsenceRequest) (AbsenceRecordResponse, error)
	ListMine(ctx context.Context, identity user.Identity) ([]AbsenceRecordResponse, error)
	Update(ctx context.Context, identity user.Identity, id int64, req AbsenceRequest) (AbsenceRecordResponse, error)
	Delete(ctx context.Context, identity user.Identity, id int64) error
	// Type catalog
	ListTypes(ctx context.Context) ([]AbsenceTypeResponse, error)
	CreateType(ctx context.Context, req AbsenceTypeRequest) (AbsenceTypeResponse, error)
	DeleteType(ctx context.Context, id int64) error
}
