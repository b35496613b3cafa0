package absence

import (
	"context"
	"fmt"
	"time"
)

// AbsenceRecordRepository - interface for absence_records table.
// Implementations return ErrAbsenceNotFound for missing rows and ErrAbsenceDateConflict
// when the unique (user_id, date) index rejects a write.
type AbsenceRecordRepository interface {
	Create(ctx context.Context, record AbsenceRecord) (AbsenceRecord, error)
	GetByID(ctx context.Context, id int64) (AbsenceRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]AbsenceRecord, error)
	ExistsForDate(ctx context.Context, userID string, date time.Time, excludeID *int64) (bool, error)
	Update(ctx context.Context, record AbsenceRecord) (AbsenceRecord, error)
	Delete(ctx context.Context, id int64) error
}

// AbsenceTypeRepository - interface for absence_types table
type AbsenceTypeRepository interface {
	Create(ctx context.Context, absenceType AbsenceType) (AbsenceType, error)
	List(ctx context.Context) ([]AbsenceType, error)
	Delete(ctx context.Context, id int64) error
}

// UpdateRecord applies req onto existing and stores it through repo. Moving the record onto
// a day its owner already has an absence for yields ErrAbsenceDateConflict.
func UpdateRecord(ctx context.Context, repo AbsenceRecordRepository, existing AbsenceRecord, req AbsenceRequest) (AbsenceRecord, error) {
	previousDate := existing.Date
	req.ApplyTo(&existing)

	if !existing.Date.Equal(previousDate) {
		exists, err := repo.ExistsForDate(ctx, existing.UserID, existing.Date, &existing.ID)
		if err != nil {
			return AbsenceRecord{}, fmt.Errorf("failed to check absence date: %w", err)
		}
		if exists {
			return AbsenceRecord{}, ErrAbsenceDateConflict
		}
	}

	return repo.Update(ctx, existing)
}
