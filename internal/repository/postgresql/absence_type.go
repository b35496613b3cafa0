package postgresql

import (
	"context"
	"fmt"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
)

type absenceTypeRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceTypeRepository(db *database.DB) absence.AbsenceTypeRepository {
	return &absenceTypeRepositoryImpl{db: db}
}

// Create implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Create(ctx context.Context, absenceType absence.AbsenceType) (absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_types (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`

	var created absence.AbsenceType
	err := q.QueryRow(ctx, query, absenceType.Name, absenceType.Description).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.CreatedAt,
	)
	if err != nil {
		return absence.AbsenceType{}, fmt.Errorf("insert absence type: %w", err)
	}
	return created, nil
}

// List implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) List(ctx context.Context) ([]absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at FROM absence_types ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("query absence types: %w", err)
	}
	defer rows.Close()

	types := make([]absence.AbsenceType, 0)
	for rows.Next() {
		var t absence.AbsenceType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// Delete implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absence_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete absence type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceTypeNotFound
	}
	return nil
}
