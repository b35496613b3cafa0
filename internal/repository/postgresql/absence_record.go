package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
)

const absenceRecordColumns = `id, user_id, date, absence_type, description, created_at, updated_at`

type absenceRecordRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRecordRepository(db *database.DB) absence.AbsenceRecordRepository {
	return &absenceRecordRepositoryImpl{db: db}
}

func scanAbsenceRecord(row pgx.Row) (absence.AbsenceRecord, error) {
	var a absence.AbsenceRecord
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.AbsenceType,
		&a.Description,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceRecord{}, err
	}
	return a, nil
}

// Create implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Create(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_records (user_id, date, absence_type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + absenceRecordColumns

	created, err := scanAbsenceRecord(q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.AbsenceType,
		record.Description,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceDateConflict
		}
		return absence.AbsenceRecord{}, fmt.Errorf("insert absence record: %w", err)
	}
	return created, nil
}

// GetByID implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)
	return scanAbsenceRecord(q.QueryRow(ctx, `SELECT `+absenceRecordColumns+` FROM absence_records WHERE id = $1`, id))
}

// ListByUserID implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+absenceRecordColumns+` FROM absence_records WHERE user_id = $1 ORDER BY date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query absence records: %w", err)
	}
	defer rows.Close()

	records := make([]absence.AbsenceRecord, 0)
	for rows.Next() {
		a, err := scanAbsenceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ExistsForDate implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) ExistsForDate(ctx context.Context, userID string, date time.Time, excludeID *int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM absence_records
			WHERE user_id = $1 AND date = $2 AND ($3::BIGINT IS NULL OR id <> $3)
		)`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Update(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_records
		SET date = $1, absence_type = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + absenceRecordColumns

	updated, err := scanAbsenceRecord(q.QueryRow(ctx, query,
		record.Date,
		record.AbsenceType,
		record.Description,
		record.ID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceDateConflict
		}
		return absence.AbsenceRecord{}, err
	}
	return updated, nil
}

// Delete implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absence_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete absence record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}
