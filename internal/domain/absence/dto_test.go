package absence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
)

func TestAbsenceRequest_ApplyTo_DefaultsDescription(t *testing.T) {
	req := AbsenceRequest{Date: "2024-01-10", AbsenceType: " Sick "}
	require.NoError(t, req.Validate())

	record := AbsenceRecord{Description: "old"}
	req.ApplyTo(&record)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, "Sick", record.AbsenceType)
	assert.Equal(t, "", record.Description)
}

func TestAbsenceRequest_Validate_TrimsBeforeLengthCheck(t *testing.T) {
	padded := "   " + strings.Repeat("a", 100) + "   "
	req := AbsenceRequest{Date: "2024-01-10", AbsenceType: padded}
	require.NoError(t, req.Validate())

	var record AbsenceRecord
	req.ApplyTo(&record)
	assert.Len(t, record.AbsenceType, 100)

	req.AbsenceType = strings.Repeat("a", 101)
	assert.Error(t, req.Validate())

	typeReq := AbsenceTypeRequest{Name: " " + strings.Repeat("b", 100) + " "}
	assert.NoError(t, typeReq.Validate())
	typeReq.Name = "   "
	assert.Error(t, typeReq.Validate())
}

func TestUpdateRecord(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepository{taken: map[string]bool{"2024-01-11": true}}
	existing := AbsenceRecord{ID: 7, UserID: "user-1", Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), AbsenceType: "Sick"}

	sameDay := AbsenceRequest{Date: "2024-01-10", AbsenceType: "Vacation"}
	require.NoError(t, sameDay.Validate())
	updated, err := UpdateRecord(ctx, repo, existing, sameDay)
	require.NoError(t, err)
	assert.Equal(t, "Vacation", updated.AbsenceType)
	assert.Zero(t, repo.existsCalls, "unchanged date needs no conflict check")

	takenDay := AbsenceRequest{Date: "2024-01-11", AbsenceType: "Sick"}
	require.NoError(t, takenDay.Validate())
	_, err = UpdateRecord(ctx, repo, existing, takenDay)
	assert.ErrorIs(t, err, ErrAbsenceDateConflict)
	assert.Equal(t, 1, repo.updates)

	freeDay := AbsenceRequest{Date: "2024-01-12", AbsenceType: "Sick"}
	require.NoError(t, freeDay.Validate())
	updated, err = UpdateRecord(ctx, repo, existing, freeDay)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), updated.Date)
	assert.Equal(t, 2, repo.updates)
}

type fakeRecordRepository struct {
	AbsenceRecordRepository
	taken       map[string]bool
	existsCalls int
	updates     int
}

func (f *fakeRecordRepository) ExistsForDate(ctx context.Context, userID string, date time.Time, excludeID *int64) (bool, error) {
	f.existsCalls++
	return f.taken[date.Format("2006-01-02")], nil
}

func (f *fakeRecordRepository) Update(ctx context.Context, record AbsenceRecord) (AbsenceRecord, error) {
	f.updates++
	return record, nil
}

func TestAbsenceRequest_Validate_Errors(t *testing.T) {
	req := AbsenceRequest{Date: "2024-13-01"}
	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "absence_type")
}

func TestAbsenceTypeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AbsenceTypeRequest{Name: "Vacation"}).Validate())
	assert.Error(t, (&AbsenceTypeRequest{Name: "  "}).Validate())
}
