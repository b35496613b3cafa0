package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
)

type absenceTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewAbsenceTypeRepository(db *gorm.DB) absence.AbsenceTypeRepository {
	return &absenceTypeRepositoryImpl{db: db}
}

// Create implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Create(ctx context.Context, absenceType absence.AbsenceType) (absence.AbsenceType, error) {
	m := absenceTypeModel{Name: absenceType.Name, Description: absenceType.Description}
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		return absence.AbsenceType{}, fmt.Errorf("insert absence type: %w", err)
	}
	return m.toDomain(), nil
}

// List implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) List(ctx context.Context) ([]absence.AbsenceType, error) {
	var models []absenceTypeModel
	if err := getDB(ctx, r.db).Order("name, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("query absence types: %w", err)
	}

	types := make([]absence.AbsenceType, 0, len(models))
	for _, m := range models {
		types = append(types, m.toDomain())
	}
	return types, nil
}

// Delete implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&absenceTypeModel{})
	if result.Error != nil {
		return fmt.Errorf("delete absence type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return absence.ErrAbsenceTypeNotFound
	}
	return nil
}
