package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
)

type workLogRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) worklog.WorkLogRepository {
	return &workLogRepositoryImpl{db: db}
}

// Create implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Create(ctx context.Context, workLog worklog.WorkLog) (worklog.WorkLog, error) {
	m := newWorkLogModel(workLog)
	m.ID = 0
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		return worklog.WorkLog{}, fmt.Errorf("insert work log: %w", err)
	}
	return m.toDomain(), nil
}

// GetByID implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) GetByID(ctx context.Context, id int64) (worklog.WorkLog, error) {
	var m workLogModel
	if err := getDB(ctx, r.db).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
		}
		return worklog.WorkLog{}, err
	}
	return m.toDomain(), nil
}

// ListByUserID implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]worklog.WorkLog, error) {
	var models []workLogModel
	if err := getDB(ctx, r.db).Where("user_id = ?", userID).Order("date, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("query work logs: %w", err)
	}

	logs := make([]worklog.WorkLog, 0, len(models))
	for _, m := range models {
		logs = append(logs, m.toDomain())
	}
	return logs, nil
}

// Update implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Update(ctx context.Context, workLog worklog.WorkLog) (worklog.WorkLog, error) {
	result := getDB(ctx, r.db).Model(&workLogModel{}).Where("id = ?", workLog.ID).Updates(map[string]interface{}{
		"date":        workLog.Date,
		"start_time":  workLog.StartTime,
		"end_time":    workLog.EndTime,
		"break_start": workLog.BreakStart,
		"break_end":   workLog.BreakEnd,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return worklog.WorkLog{}, fmt.Errorf("update work log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
	}
	return r.GetByID(ctx, workLog.ID)
}

// Delete implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&workLogModel{})
	if result.Error != nil {
		return fmt.Errorf("delete work log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return worklog.ErrWorkLogNotFound
	}
	return nil
}
