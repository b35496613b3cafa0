package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
)

type absenceRecordRepositoryImpl struct {
	db *gorm.DB
}

func NewAbsenceRecordRepository(db *gorm.DB) absence.AbsenceRecordRepository {
	return &absenceRecordRepositoryImpl{db: db}
}

// Create implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Create(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	m := newAbsenceRecordModel(record)
	m.ID = 0
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceDateConflict
		}
		return absence.AbsenceRecord{}, fmt.Errorf("insert absence record: %w", err)
	}
	return m.toDomain(), nil
}

// GetByID implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.AbsenceRecord, error) {
	var m absenceRecordModel
	if err := getDB(ctx, r.db).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceRecord{}, err
	}
	return m.toDomain(), nil
}

// ListByUserID implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]absence.AbsenceRecord, error) {
	var models []absenceRecordModel
	if err := getDB(ctx, r.db).Where("user_id = ?", userID).Order("date, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("query absence records: %w", err)
	}

	records := make([]absence.AbsenceRecord, 0, len(models))
	for _, m := range models {
		records = append(records, m.toDomain())
	}
	return records, nil
}

// ExistsForDate implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) ExistsForDate(ctx context.Context, userID string, date time.Time, excludeID *int64) (bool, error) {
	q := getDB(ctx, r.db).Model(&absenceRecordModel{}).Where("user_id = ? AND date = ?", userID, date)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

// Update implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Update(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	result := getDB(ctx, r.db).Model(&absenceRecordModel{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"date":         record.Date,
		"absence_type": record.AbsenceType,
		"description":  record.Description,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceDateConflict
		}
		return absence.AbsenceRecord{}, fmt.Errorf("update absence record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
	}
	return r.GetByID(ctx, record.ID)
}

// Delete implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&absenceRecordModel{})
	if result.Error != nil {
		return fmt.Errorf("delete absence record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}
