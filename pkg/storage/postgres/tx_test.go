package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"backma/pkg/domain"
	"backma/pkg/storage"
	"backma/pkg/storage/postgres"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// credit applies a deposit the way the ledger does: lock the user row, write
// the new balance and append the transaction row.
func credit(ctx context.Context, t *testing.T, s storage.AllStorage, user *domain.User, amount string) {
	t.Helper()
	locked, err := s.LockUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, locked)

	after := locked.Balance.Add(decimal.RequireFromString(amount))
	require.NoError(t, s.SetUserBalance(ctx, user.ID, after))
	_, err = s.StoreTransaction(ctx, domain.Transaction{
		UserID:        user.ID,
		Type:          domain.TransactionTypeDeposit,
		Amount:        decimal.RequireFromString(amount),
		BalanceBefore: locked.Balance,
		BalanceAfter:  after,
	})
	require.NoError(t, err)
}

// requireLedger asserts the committed balance of user and the number of
// its transaction rows.
func requireLedger(t *testing.T, pg *postgres.PgSQL, user *domain.User, balance string, rows int) {
	t.Helper()
	stored, err := pg.UserByID(t.Context(), user.ID)
	require.NoError(t, err)
	require.True(t, stored.Balance.Equal(decimal.RequireFromString(balance)),
		"balance %s, want %s", stored.Balance, balance)

	page, err := pg.Transactions(t.Context(), storage.TransactionFilter{UserID: &user.ID})
	require.NoError(t, err)
	require.Len(t, page.Items, rows)
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "begin@example.com", domain.RoleAdvertiser, "0")

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// the balance lock is only available inside the transaction
	locked, err := inner.LockUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, locked.ID)
	_, err = pg.LockUser(ctx, user.ID)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_PersistsBalanceAndTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "commit@example.com", domain.RoleAdvertiser, "0")

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	credit(ctx, t, txStorage, user, "100.00")

	// nothing is visible before commit
	requireLedger(t, pg, user, "0", 0)

	require.NoError(t, txStorage.Commit())
	requireLedger(t, pg, user, "100.00", 1)
}

func TestPgSQL_Rollback_DiscardsBalanceAndTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "rollback@example.com", domain.RoleAdvertiser, "25")

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	credit(ctx, t, txStorage, user, "75")
	require.NoError(t, txStorage.Rollback())

	requireLedger(t, pg, user, "25", 0)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "withtx@example.com", domain.RoleAdvertiser, "0")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		credit(ctx, t, s, user, "40")

		return nil
	})
	require.NoError(t, err)
	requireLedger(t, pg, user, "40", 1)

	// a failure after the balance was written leaves both tables untouched
	boom := errors.New("could not enqueue email")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		credit(ctx, t, s, user, "60")

		return boom
	})
	require.ErrorIs(t, err, boom)
	requireLedger(t, pg, user, "40", 1)
}
