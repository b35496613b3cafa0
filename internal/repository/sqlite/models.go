package sqlite

import (
	"time"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
)

type userModel struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	Username       string  `gorm:"type:varchar(50);not null"`
	UsernameKey    string  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email          string  `gorm:"type:varchar(254);not null"`
	FullName       string  `gorm:"type:varchar(255);not null"`
	Phone          string  `gorm:"type:varchar(32);not null"`
	EmploymentType string  `gorm:"type:varchar(100);not null"`
	JobTitle       string  `gorm:"type:varchar(100);not null"`
	IsActive       bool    `gorm:"not null"`
	Role           string  `gorm:"type:varchar(20);not null"`
	PasswordHash   string  `gorm:"not null"`
	GoogleID       *string `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (userModel) TableName() string {
	return "users"
}

func newUserModel(u user.User) userModel {
	m := userModel{
		ID:             u.ID,
		Username:       u.Username,
		UsernameKey:    user.NormalizeUsername(u.Username),
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		EmploymentType: u.EmploymentType,
		JobTitle:       u.JobTitle,
		IsActive:       u.IsActive,
		Role:           string(u.Role),
		PasswordHash:   u.PasswordHash,
	}
	if u.GoogleID != "" {
		googleID := u.GoogleID
		m.GoogleID = &googleID
	}
	return m
}

func (m userModel) toDomain() user.User {
	u := user.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		FullName:       m.FullName,
		Phone:          m.Phone,
		EmploymentType: m.EmploymentType,
		JobTitle:       m.JobTitle,
		IsActive:       m.IsActive,
		Role:           user.Role(m.Role),
		PasswordHash:   m.PasswordHash,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.GoogleID != nil {
		u.GoogleID = *m.GoogleID
	}
	return u
}

type workLogModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     string    `gorm:"type:varchar(36);not null;index:idx_work_logs_user_date,priority:1"`
	Date       time.Time `gorm:"type:date;not null;index:idx_work_logs_user_date,priority:2"`
	StartTime  string    `gorm:"type:char(8);not null"`
	EndTime    string    `gorm:"type:char(8);not null"`
	BreakStart *string   `gorm:"type:char(8)"`
	BreakEnd   *string   `gorm:"type:char(8)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (workLogModel) TableName() string {
	return "work_logs"
}

func newWorkLogModel(w worklog.WorkLog) workLogModel {
	return workLogModel{
		ID:         w.ID,
		UserID:     w.UserID,
		Date:       w.Date,
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
		BreakStart: w.BreakStart,
		BreakEnd:   w.BreakEnd,
	}
}

func (m workLogModel) toDomain() worklog.WorkLog {
	return worklog.WorkLog{
		ID:         m.ID,
		UserID:     m.UserID,
		Date:       m.Date.UTC(),
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		BreakStart: m.BreakStart,
		BreakEnd:   m.BreakEnd,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type absenceRecordModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_absence_records_user_date,priority:1"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_absence_records_user_date,priority:2"`
	AbsenceType string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (absenceRecordModel) TableName() string {
	return "absence_records"
}

func newAbsenceRecordModel(a absence.AbsenceRecord) absenceRecordModel {
	return absenceRecordModel{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.Date,
		AbsenceType: a.AbsenceType,
		Description: a.Description,
	}
}

func (m absenceRecordModel) toDomain() absence.AbsenceRecord {
	return absence.AbsenceRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date.UTC(),
		AbsenceType: m.AbsenceType,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type absenceTypeModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description *string
	CreatedAt   time.Time
}

func (absenceTypeModel) TableName() string {
	return "absence_types"
}

func (m absenceTypeModel) toDomain() absence.AbsenceType {
	return absence.AbsenceType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
