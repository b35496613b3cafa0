package absence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/repository/sqlite"
)

type absenceFixture struct {
	svc     absence.AbsenceService
	users   user.UserRepository
	records absence.AbsenceRecordRepository
}

func newAbsenceFixture(t *testing.T) absenceFixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := sqlite.NewUserRepository(db)
	records := sqlite.NewAbsenceRecordRepository(db)
	return absenceFixture{
		svc:     NewAbsenceService(sqlite.NewTransactor(db), users, records, sqlite.NewAbsenceTypeRepository(db)),
		users:   users,
		records: records,
	}
}

func (f absenceFixture) identity(t *testing.T, username string, role user.Role) user.Identity {
	t.Helper()
	u, err := f.users.Create(context.Background(), user.User{
		ID:           uuid.NewString(),
		Username:     username,
		IsActive:     true,
		Role:         role,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func sick(date string) absence.AbsenceRequest {
	return absence.AbsenceRequest{Date: date, AbsenceType: "Sick"}
}

func TestAbsenceService_Create_RejectsSecondRecordForSameDay(t *testing.T) {
	f := newAbsenceFixture(t)
	ctx := context.Background()
	alice := f.identity(t, "alice", user.RoleUser)

	created, err := f.svc.Create(ctx, alice, sick("2024-01-10"))
	require.NoError(t, err)
	assert.Equal(t, "", created.Description)
	assert.Equal(t, alice.UserID, created.UserID)

	_, err = f.svc.Create(ctx, alice, absence.AbsenceRequest{Date: "2024-01-10", AbsenceType: "Vacation"})
	assert.ErrorIs(t, err, absence.ErrAbsenceDateConflict)

	records, err := f.svc.ListMine(ctx, alice)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Sick", records[0].AbsenceType)
}

func TestAbsenceService_Create_UnknownUser(t *testing.T) {
	f := newAbsenceFixture(t)
	ghost := user.Identity{UserID: uuid.NewString(), Role: user.RoleUser}

	_, err := f.svc.Create(context.Background(), ghost, sick("2024-01-10"))
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = f.svc.ListMine(context.Background(), ghost)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAbsenceService_SameDayForDifferentUsers(t *testing.T) {
	f := newAbsenceFixture(t)
	ctx := context.Background()
	alice := f.identity(t, "alice", user.RoleUser)
	bob := f.identity(t, "bob", user.RoleUser)

	_, err := f.svc.Create(ctx, alice, sick("2024-01-10"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, bob, sick("2024-01-10"))
	assert.NoError(t, err)
}

func TestAbsenceService_UpdateAndDelete_Ownership(t *testing.T) {
	f := newAbsenceFixture(t)
	ctx := context.Background()
	alice := f.identity(t, "alice", user.RoleUser)
	bob := f.identity(t, "bob", user.RoleUser)
	admin := f.identity(t, "admin", user.RoleAdmin)

	first, err := f.svc.Create(ctx, alice, sick("2024-01-10"))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, alice, sick("2024-01-12"))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, bob, first.ID, sick("2024-01-11"))
	assert.ErrorIs(t, err, absence.ErrAbsenceAccessDenied)
	assert.ErrorIs(t, f.svc.Delete(ctx, bob, first.ID), absence.ErrAbsenceAccessDenied)

	_, err = f.svc.Update(ctx, alice, second.ID, sick("2024-01-10"))
	assert.ErrorIs(t, err, absence.ErrAbsenceDateConflict)

	desc := "doctor's note"
	updated, err := f.svc.Update(ctx, admin, first.ID, absence.AbsenceRequest{Date: "2024-01-11", AbsenceType: "Sick", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11", updated.Date)
	assert.Equal(t, "doctor's note", updated.Description)
	assert.Equal(t, alice.UserID, updated.UserID)

	// same date, different fields
	updated, err = f.svc.Update(ctx, alice, first.ID, absence.AbsenceRequest{Date: "2024-01-11", AbsenceType: "Vacation"})
	require.NoError(t, err)
	assert.Equal(t, "Vacation", updated.AbsenceType)
	assert.Equal(t, "", updated.Description)

	_, err = f.svc.Update(ctx, alice, 999, sick("2024-01-20"))
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)

	require.NoError(t, f.svc.Delete(ctx, alice, first.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, admin, first.ID), absence.ErrAbsenceNotFound)
}

func TestAbsenceService_TypeCatalog(t *testing.T) {
	f := newAbsenceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateType(ctx, absence.AbsenceTypeRequest{Name: "  Vacation "})
	require.NoError(t, err)
	assert.Equal(t, "Vacation", created.Name)

	_, err = f.svc.CreateType(ctx, absence.AbsenceTypeRequest{Name: ""})
	assert.Error(t, err)

	types, err := f.svc.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)

	require.NoError(t, f.svc.DeleteType(ctx, created.ID))
	assert.ErrorIs(t, f.svc.DeleteType(ctx, created.ID), absence.ErrAbsenceTypeNotFound)
}
