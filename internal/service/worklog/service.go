package worklog

import (
	"context"
	"fmt"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
)

type WorkLogServiceImpl struct {
	database.Transactor
	worklog.WorkLogRepository
}

func NewWorkLogService(transactor database.Transactor, workLogRepository worklog.WorkLogRepository) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		Transactor:        transactor,
		WorkLogRepository: workLogRepository,
	}
}

// Create implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) Create(ctx context.Context, identity user.Identity, req worklog.WorkLogRequest) (worklog.WorkLogResponse, error) {
	if identity.UserID == "" {
		return worklog.WorkLogResponse{}, auth.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	newLog := worklog.WorkLog{UserID: identity.UserID}
	req.ApplyTo(&newLog)

	created, err := s.WorkLogRepository.Create(ctx, newLog)
	if err != nil {
		return worklog.WorkLogResponse{}, fmt.Errorf("failed to create work log: %w", err)
	}
	return created.ToResponse(), nil
}

// ListMine implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) ListMine(ctx context.Context, identity user.Identity) ([]worklog.WorkLogResponse, error) {
	logs, err := s.ListByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	return worklog.ToResponses(logs), nil
}

// Update implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) Update(ctx context.Context, identity user.Identity, id int64, req worklog.WorkLogRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	var updated worklog.WorkLog
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !user.CanAccess(identity, existing.UserID) {
			return worklog.ErrWorkLogAccessDenied
		}

		req.ApplyTo(&existing)
		updated, err = s.WorkLogRepository.Update(ctx, existing)
		return err
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return updated.ToResponse(), nil
}

// Delete implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) Delete(ctx context.Context, identity user.Identity, id int64) error {
	return s.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !user.CanAccess(identity, existing.UserID) {
			return worklog.ErrWorkLogAccessDenied
		}
		return s.WorkLogRepository.Delete(ctx, id)
	})
}
