package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/admin"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/repository/sqlite"
)

type adminFixture struct {
	svc      admin.AdminService
	users    user.UserRepository
	workLogs worklog.WorkLogRepository
	records  absence.AbsenceRecordRepository
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	f := adminFixture{
		users:    sqlite.NewUserRepository(db),
		workLogs: sqlite.NewWorkLogRepository(db),
		records:  sqlite.NewAbsenceRecordRepository(db),
	}
	f.svc = NewAdminService(sqlite.NewTransactor(db), f.users, f.workLogs, f.records)
	return f
}

func (f adminFixture) createUser(t *testing.T, username string) user.User {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	u, err := f.users.Create(context.Background(), user.User{
		ID:           id.String(),
		Username:     username,
		Email:        username + "@example.com",
		FullName:     username + " full",
		IsActive:     true,
		Role:         user.RoleUser,
		PasswordHash: "secret-hash",
	})
	require.NoError(t, err)
	return u
}

func TestAdminService_ListUsers(t *testing.T) {
	f := newAdminFixture(t)
	f.createUser(t, "bob")
	alice := f.createUser(t, "alice")

	users, err := f.svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, user.UserSummary{
		ID:       alice.ID,
		Username: "alice",
		FullName: "alice full",
		Email:    "alice@example.com",
	}, users[0])
}

func TestAdminService_ListRecordsFor(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	req := worklog.WorkLogRequest{Date: "2024-01-10", StartTime: "08:00", EndTime: "16:00"}
	require.NoError(t, req.Validate())
	w := worklog.WorkLog{UserID: alice.ID}
	req.ApplyTo(&w)
	_, err := f.workLogs.Create(ctx, w)
	require.NoError(t, err)

	logs, err := f.svc.ListWorkLogsFor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	records, err := f.svc.ListAbsencesFor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	unknown, err := uuid.NewV7()
	require.NoError(t, err)
	logs, err = f.svc.ListWorkLogsFor(ctx, unknown.String())
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = f.svc.ListWorkLogsFor(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, admin.ErrInvalidUserID)
	_, err = f.svc.ListAbsencesFor(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, admin.ErrInvalidUserID)
}

func TestAdminService_MutatesAnyRecord(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	w := worklog.WorkLog{UserID: alice.ID, StartTime: "08:00:00", EndTime: "16:00:00"}
	first := worklog.WorkLogRequest{Date: "2024-01-10", StartTime: "08:00", EndTime: "16:00"}
	require.NoError(t, first.Validate())
	first.ApplyTo(&w)
	createdLog, err := f.workLogs.Create(ctx, w)
	require.NoError(t, err)

	updatedLog, err := f.svc.UpdateWorkLog(ctx, createdLog.ID, worklog.WorkLogRequest{Date: "2024-01-10", StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", updatedLog.StartTime)
	assert.Equal(t, alice.ID, updatedLog.UserID)

	_, err = f.svc.UpdateWorkLog(ctx, 999, worklog.WorkLogRequest{Date: "2024-01-10", StartTime: "09:00", EndTime: "17:00"})
	assert.ErrorIs(t, err, worklog.ErrWorkLogNotFound)

	require.NoError(t, f.svc.DeleteWorkLog(ctx, createdLog.ID))
	assert.ErrorIs(t, f.svc.DeleteWorkLog(ctx, createdLog.ID), worklog.ErrWorkLogNotFound)

	a := absence.AbsenceRequest{Date: "2024-01-10", AbsenceType: "Sick"}
	require.NoError(t, a.Validate())
	rec := absence.AbsenceRecord{UserID: alice.ID}
	a.ApplyTo(&rec)
	createdRec, err := f.records.Create(ctx, rec)
	require.NoError(t, err)

	b := absence.AbsenceRequest{Date: "2024-01-11", AbsenceType: "Sick"}
	require.NoError(t, b.Validate())
	rec2 := absence.AbsenceRecord{UserID: alice.ID}
	b.ApplyTo(&rec2)
	otherRec, err := f.records.Create(ctx, rec2)
	require.NoError(t, err)

	_, err = f.svc.UpdateAbsence(ctx, otherRec.ID, absence.AbsenceRequest{Date: "2024-01-10", AbsenceType: "Sick"})
	assert.ErrorIs(t, err, absence.ErrAbsenceDateConflict)

	updatedRec, err := f.svc.UpdateAbsence(ctx, createdRec.ID, absence.AbsenceRequest{Date: "2024-01-09", AbsenceType: "Vacation"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", updatedRec.Date)
	assert.Equal(t, "Vacation", updatedRec.AbsenceType)

	require.NoError(t, f.svc.DeleteAbsence(ctx, createdRec.ID))
	assert.ErrorIs(t, f.svc.DeleteAbsence(ctx, createdRec.ID), absence.ErrAbsenceNotFound)
}
