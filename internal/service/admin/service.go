package admin

import (
	"context"
	"fmt"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/admin"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

type AdminServiceImpl struct {
	database.Transactor
	userRepository    user.UserRepository
	workLogRepository worklog.WorkLogRepository
	absenceRepository absence.AbsenceRecordRepository
}

func NewAdminService(
	transactor database.Transactor,
	userRepository user.UserRepository,
	workLogRepository worklog.WorkLogRepository,
	absenceRepository absence.AbsenceRecordRepository,
) admin.AdminService {
	return &AdminServiceImpl{
		Transactor:        transactor,
		userRepository:    userRepository,
		workLogRepository: workLogRepository,
		absenceRepository: absenceRepository,
	}
}

// ListUsers implements admin.AdminService.
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]user.UserSummary, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]user.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

// ListWorkLogsFor implements admin.AdminService. An unknown user simply has no records.
func (s *AdminServiceImpl) ListWorkLogsFor(ctx context.Context, userID string) ([]worklog.WorkLogResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, admin.ErrInvalidUserID
	}

	logs, err := s.workLogRepository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs for user %s: %w", userID, err)
	}
	return worklog.ToResponses(logs), nil
}

// ListAbsencesFor implements admin.AdminService.
func (s *AdminServiceImpl) ListAbsencesFor(ctx context.Context, userID string) ([]absence.AbsenceRecordResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, admin.ErrInvalidUserID
	}

	records, err := s.absenceRepository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence records for user %s: %w", userID, err)
	}
	return absence.ToResponses(records), nil
}

// UpdateWorkLog implements admin.AdminService.
func (s *AdminServiceImpl) UpdateWorkLog(ctx context.Context, id int64, req worklog.WorkLogRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	var updated worklog.WorkLog
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.workLogRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		req.ApplyTo(&existing)
		updated, err = s.workLogRepository.Update(ctx, existing)
		return err
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return updated.ToResponse(), nil
}

// DeleteWorkLog implements admin.AdminService.
func (s *AdminServiceImpl) DeleteWorkLog(ctx context.Context, id int64) error {
	return s.workLogRepository.Delete(ctx, id)
}

// UpdateAbsence implements admin.AdminService.
func (s *AdminServiceImpl) UpdateAbsence(ctx context.Context, id int64, req absence.AbsenceRequest) (absence.AbsenceRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceRecordResponse{}, err
	}

	var updated absence.AbsenceRecord
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.absenceRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		updated, err = absence.UpdateRecord(ctx, s.absenceRepository, existing, req)
		return err
	})
	if err != nil {
		return absence.AbsenceRecordResponse{}, err
	}

	return updated.ToResponse(), nil
}

// DeleteAbsence implements admin.AdminService.
func (s *AdminServiceImpl) DeleteAbsence(ctx context.Context, id int64) error {
	return s.absenceRepository.Delete(ctx, id)
}
