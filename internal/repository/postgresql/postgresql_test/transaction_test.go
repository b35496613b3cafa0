package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/repository/postgresql"
)

func TestTransactor_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	users := postgresql.NewUserRepository(db)
	tx := postgresql.NewTransactor(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		createTestUser(t, users, "carol")
		_, err := users.Create(ctx, user.User{ID: uuid.NewString(), Username: "dave", Role: user.RoleUser, PasswordHash: "h"})
		require.NoError(t, err)
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = users.GetByUsername(ctx, "dave")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	_, err = users.GetByUsername(ctx, "carol")
	assert.NoError(t, err)
}
