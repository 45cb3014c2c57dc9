package postgres_test

import (
	"testing"

	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	admin := seedUser(t, pg, "Admin@Back.ma", domain.RoleAdmin, "0")
	require.Equal(t, "admin@back.ma", admin.Email)
	seedUser(t, pg, "pub@example.com", domain.RolePublisher, "10")
	seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "250.50")

	t.Run("lookup is case insensitive", func(t *testing.T) {
		user, err := pg.UserByEmail(ctx, "ADMIN@back.ma")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, admin.ID, user.ID)
	})

	t.Run("missing user is nil", func(t *testing.T) {
		user, err := pg.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := pg.StoreUser(ctx, domain.User{
			Email:    "PUB@example.com",
			FullName: "Dup",
			Role:     domain.RolePublisher,
			Status:   domain.UserStatusActive,
		})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("update applies only given fields", func(t *testing.T) {
		suspended := domain.UserStatusSuspended
		user, err := pg.UpdateUser(ctx, admin.ID, storage.UserUpdates{Status: &suspended})
		require.NoError(t, err)
		require.Equal(t, domain.UserStatusSuspended, user.Status)
		require.Equal(t, admin.FullName, user.FullName)
		require.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("filter and paginate", func(t *testing.T) {
		page, err := pg.Users(ctx, storage.UserFilter{Search: "example", Cursor: storage.Cursor{Limit: 1}})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.NotNil(t, page.NextCursor)
		require.Equal(t, "adv@example.com", page.Items[0].Email)

		next, err := pg.Users(ctx, storage.UserFilter{
			Search: "example",
			Cursor: storage.Cursor{After: page.NextCursor, Limit: 1},
		})
		require.NoError(t, err)
		require.Len(t, next.Items, 1)
		require.Nil(t, next.NextCursor)
		require.Equal(t, "pub@example.com", next.Items[0].Email)

		byRole, err := pg.Users(ctx, storage.UserFilter{Role: domain.RoleAdvertiser})
		require.NoError(t, err)
		require.Len(t, byRole.Items, 1)
	})
}

func TestPgSQL_LockUserAndSetBalance(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "100")

	_, err := pg.LockUser(ctx, user.ID)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		locked, err := s.LockUser(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, locked.Balance.Equal(decimal.NewFromInt(100)))

		return s.SetUserBalance(ctx, user.ID, decimal.RequireFromString("40.25"))
	})
	require.NoError(t, err)

	after, err := pg.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.RequireFromString("40.25")))

	// the balance check constraint rejects overdrafts
	require.Error(t, pg.SetUserBalance(ctx, user.ID, decimal.NewFromInt(-1)))

	err = pg.SetUserBalance(ctx, domain.UserID(uuid.New()), decimal.Zero)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
