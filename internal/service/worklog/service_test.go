package worklog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/pkg/validator"
	"github.com/worktime/timetrack-backend-go/internal/repository/sqlite"
)

func newWorkLogFixture(t *testing.T) (worklog.WorkLogService, user.UserRepository) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewWorkLogService(sqlite.NewTransactor(db), sqlite.NewWorkLogRepository(db)), sqlite.NewUserRepository(db)
}

func createIdentity(t *testing.T, repo user.UserRepository, username string, role user.Role) user.Identity {
	t.Helper()
	u, err := repo.Create(context.Background(), user.User{
		ID:           uuid.NewString(),
		Username:     username,
		IsActive:     true,
		Role:         role,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func shift(date, start, end string) worklog.WorkLogRequest {
	return worklog.WorkLogRequest{Date: date, StartTime: start, EndTime: end}
}

func TestWorkLogService_CreateAndListMine(t *testing.T) {
	svc, users := newWorkLogFixture(t)
	ctx := context.Background()
	alice := createIdentity(t, users, "alice", user.RoleUser)
	bob := createIdentity(t, users, "bob", user.RoleUser)

	created, err := svc.Create(ctx, alice, shift("2024-01-11", "09:00", "17:00"))
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, created.UserID)
	assert.Equal(t, "2024-01-11", created.Date)
	assert.Equal(t, "09:00:00", created.StartTime)
	assert.Nil(t, created.BreakStart)

	_, err = svc.Create(ctx, alice, shift("2024-01-10", "08:00", "16:00"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, shift("2024-01-10", "08:00", "16:00"))
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2024-01-10", mine[0].Date)
	assert.Equal(t, "2024-01-11", mine[1].Date)
}

func TestWorkLogService_Create_Invalid(t *testing.T) {
	svc, users := newWorkLogFixture(t)
	alice := createIdentity(t, users, "alice", user.RoleUser)

	_, err := svc.Create(context.Background(), alice, shift("2024-01-10", "17:00", "09:00"))
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Create(context.Background(), user.Identity{}, shift("2024-01-10", "08:00", "16:00"))
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestWorkLogService_Ownership(t *testing.T) {
	svc, users := newWorkLogFixture(t)
	ctx := context.Background()
	alice := createIdentity(t, users, "alice", user.RoleUser)
	bob := createIdentity(t, users, "bob", user.RoleUser)
	admin := createIdentity(t, users, "admin", user.RoleAdmin)

	created, err := svc.Create(ctx, alice, shift("2024-01-10", "08:00", "16:00"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, created.ID, shift("2024-01-10", "07:00", "15:00"))
	assert.ErrorIs(t, err, worklog.ErrWorkLogAccessDenied)
	assert.ErrorIs(t, svc.Delete(ctx, bob, created.ID), worklog.ErrWorkLogAccessDenied)

	unchanged, err := svc.ListMine(ctx, alice)
	require.NoError(t, err)
	require.Len(t, unchanged, 1)
	assert.Equal(t, "08:00:00", unchanged[0].StartTime)

	updated, err := svc.Update(ctx, admin, created.ID, shift("2024-01-10", "07:00", "15:00"))
	require.NoError(t, err)
	assert.Equal(t, "07:00:00", updated.StartTime)
	assert.Equal(t, alice.UserID, updated.UserID)

	req := shift("2024-01-10", "07:00", "15:30")
	brk, brkEnd := "12:00", "12:30"
	req.BreakStart, req.BreakEnd = &brk, &brkEnd
	updated, err = svc.Update(ctx, alice, created.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated.BreakStart)
	assert.Equal(t, "12:00:00", *updated.BreakStart)

	require.NoError(t, svc.Delete(ctx, alice, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, alice, created.ID), worklog.ErrWorkLogNotFound)

	_, err = svc.Update(ctx, admin, 424242, shift("2024-01-10", "07:00", "15:00"))
	assert.ErrorIs(t, err, worklog.ErrWorkLogNotFound)
}
