package absence

import (
	"context"
	"fmt"
	"strings"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
)

type AbsenceServiceImpl struct {
	database.Transactor
	userRepository   user.UserRepository
	recordRepository absence.AbsenceRecordRepository
	typeRepository   absence.AbsenceTypeRepository
}

func NewAbsenceService(
	transactor database.Transactor,
	userRepository user.UserRepository,
	recordRepository absence.AbsenceRecordRepository,
	typeRepository absence.AbsenceTypeRepository,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		Transactor:       transactor,
		userRepository:   userRepository,
		recordRepository: recordRepository,
		typeRepository:   typeRepository,
	}
}

// Create implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Create(ctx context.Context, identity user.Identity, req absence.AbsenceRequest) (absence.AbsenceRecordResponse, error) {
	if identity.UserID == "" {
		return absence.AbsenceRecordResponse{}, auth.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return absence.AbsenceRecordResponse{}, err
	}

	var created absence.AbsenceRecord
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.userRepository.GetByID(ctx, identity.UserID); err != nil {
			return err
		}

		exists, err := s.recordRepository.ExistsForDate(ctx, identity.UserID, req.ParsedDate(), nil)
		if err != nil {
			return fmt.Errorf("failed to check absence date: %w", err)
		}
		if exists {
			return absence.ErrAbsenceDateConflict
		}

		record := absence.AbsenceRecord{UserID: identity.UserID}
		req.ApplyTo(&record)

		created, err = s.recordRepository.Create(ctx, record)
		return err
	})
	if err != nil {
		return absence.AbsenceRecordResponse{}, err
	}

	return created.ToResponse(), nil
}

// ListMine implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListMine(ctx context.Context, identity user.Identity) ([]absence.AbsenceRecordResponse, error) {
	if _, err := s.userRepository.GetByID(ctx, identity.UserID); err != nil {
		return nil, err
	}

	records, err := s.recordRepository.ListByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence records: %w", err)
	}
	return absence.ToResponses(records), nil
}

// Update implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Update(ctx context.Context, identity user.Identity, id int64, req absence.AbsenceRequest) (absence.AbsenceRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceRecordResponse{}, err
	}

	var updated absence.AbsenceRecord
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.recordRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !user.CanAccess(identity, existing.UserID) {
			return absence.ErrAbsenceAccessDenied
		}

		updated, err = absence.UpdateRecord(ctx, s.recordRepository, existing, req)
		return err
	})
	if err != nil {
		return absence.AbsenceRecordResponse{}, err
	}

	return updated.ToResponse(), nil
}

// Delete implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Delete(ctx context.Context, identity user.Identity, id int64) error {
	return s.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.recordRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !user.CanAccess(identity, existing.UserID) {
			return absence.ErrAbsenceAccessDenied
		}
		return s.recordRepository.Delete(ctx, id)
	})
}

// ListTypes implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListTypes(ctx context.Context) ([]absence.AbsenceTypeResponse, error) {
	types, err := s.typeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}

	responses := make([]absence.AbsenceTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, types[i].ToResponse())
	}
	return responses, nil
}

// CreateType implements absence.AbsenceService.
func (s *AbsenceServiceImpl) CreateType(ctx context.Context, req absence.AbsenceTypeRequest) (absence.AbsenceTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceTypeResponse{}, err
	}

	created, err := s.typeRepository.Create(ctx, absence.AbsenceType{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		return absence.AbsenceTypeResponse{}, fmt.Errorf("failed to create absence type: %w", err)
	}
	return created.ToResponse(), nil
}

// DeleteType implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteType(ctx context.Context, id int64) error {
	return s.typeRepository.Delete(ctx, id)
}
