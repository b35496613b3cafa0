package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
)

const workLogColumns = `id, user_id, date, start_time, end_time, break_start, break_end, created_at, updated_at`

type workLogRepositoryImpl struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepositoryImpl{db: db}
}

func scanWorkLog(row pgx.Row) (worklog.WorkLog, error) {
	var w worklog.WorkLog
	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Date,
		&w.StartTime,
		&w.EndTime,
		&w.BreakStart,
		&w.BreakEnd,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
		}
		return worklog.WorkLog{}, err
	}
	return w, nil
}

// Create implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Create(ctx context.Context, workLog worklog.WorkLog) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_logs (user_id, date, start_time, end_time, break_start, break_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workLogColumns

	created, err := scanWorkLog(q.QueryRow(ctx, query,
		workLog.UserID,
		workLog.Date,
		workLog.StartTime,
		workLog.EndTime,
		workLog.BreakStart,
		workLog.BreakEnd,
	))
	if err != nil {
		return worklog.WorkLog{}, fmt.Errorf("insert work log: %w", err)
	}
	return created, nil
}

// GetByID implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) GetByID(ctx context.Context, id int64) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)
	return scanWorkLog(q.QueryRow(ctx, `SELECT `+workLogColumns+` FROM work_logs WHERE id = $1`, id))
}

// ListByUserID implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+workLogColumns+` FROM work_logs WHERE user_id = $1 ORDER BY date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query work logs: %w", err)
	}
	defer rows.Close()

	logs := make([]worklog.WorkLog, 0)
	for rows.Next() {
		w, err := scanWorkLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, w)
	}
	return logs, rows.Err()
}

// Update implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Update(ctx context.Context, workLog worklog.WorkLog) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_logs
		SET date = $1, start_time = $2, end_time = $3, break_start = $4, break_end = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + workLogColumns

	return scanWorkLog(q.QueryRow(ctx, query,
		workLog.Date,
		workLog.StartTime,
		workLog.EndTime,
		workLog.BreakStart,
		workLog.BreakEnd,
		workLog.ID,
	))
}

// Delete implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrWorkLogNotFound
	}
	return nil
}
