package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"backma/internal/ledger"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"
	mockstorage "backma/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestLedger(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, ledger.Ledger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, ledger.New(st, nil)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func storeEcho(tx *mockstorage.MockAllStorage) *gomock.Call {
	return tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
			txn.ID = domain.TransactionID(uuid.New())
			txn.CreatedAt = time.Now()

			return &txn, nil
		})
}

func TestSplitCommission(t *testing.T) {
	tests := []struct {
		amount, percent, commission, net string
	}{
		{"100", "20", "20", "80"},
		{"99.99", "15", "15", "84.99"},
		{"10.05", "10", "1.01", "9.04"},
		{"50", "0", "0", "50"},
		{"50", "100", "50", "0"},
	}
	for _, tt := range tests {
		commission, net, err := ledger.SplitCommission(d(tt.amount), d(tt.percent))
		require.NoError(t, err)
		require.True(t, commission.Equal(d(tt.commission)), "%s of %s: got %s", tt.percent, tt.amount, commission)
		require.True(t, net.Equal(d(tt.net)), "%s of %s: got %s", tt.percent, tt.amount, net)
		require.True(t, commission.Add(net).Equal(d(tt.amount)))
	}

	_, _, err := ledger.SplitCommission(d("10"), d("101"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	_, _, err = ledger.SplitCommission(d("10"), d("-1"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestLedger_Post_Debit(t *testing.T) {
	ctrl, _, l := newTestLedger(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	gomock.InOrder(
		tx.EXPECT().LockUser(gomock.Any(), userID).Return(&domain.User{ID: userID, Balance: d("100")}, nil),
		tx.EXPECT().SetUserBalance(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, balance decimal.Decimal) error {
				require.True(t, balance.Equal(d("70.50")))

				return nil
			}),
		storeEcho(tx),
	)

	posted, err := l.Post(context.Background(), tx, ledger.Entry{
		UserID:    userID,
		Type:      domain.TransactionTypePurchase,
		Amount:    d("-29.50"),
		Reference: domain.Reference{Type: domain.ReferencePurchase, ID: uuid.New()},
	})
	require.NoError(t, err)
	require.True(t, posted.BalanceBefore.Equal(d("100")))
	require.True(t, posted.BalanceAfter.Equal(d("70.50")))
	require.True(t, posted.BalanceBefore.Add(posted.Amount).Equal(posted.BalanceAfter))
	require.Equal(t, domain.ReferencePurchase, posted.Reference.Type)
}

func TestLedger_Post_InsufficientBalance(t *testing.T) {
	ctrl, _, l := newTestLedger(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	// no balance write and no transaction row
	tx.EXPECT().LockUser(gomock.Any(), userID).Return(&domain.User{ID: userID, Balance: d("10")}, nil)

	_, err := l.Post(context.Background(), tx, ledger.Entry{
		UserID: userID,
		Type:   domain.TransactionTypeWithdrawal,
		Amount: d("-10.01"),
	})
	require.ErrorIs(t, err, serrors.ErrInsufficientBalance)
}

func TestLedger_Post_ExactBalanceIsAllowed(t *testing.T) {
	ctrl, _, l := newTestLedger(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	tx.EXPECT().LockUser(gomock.Any(), userID).Return(&domain.User{ID: userID, Balance: d("10")}, nil)
	tx.EXPECT().SetUserBalance(gomock.Any(), userID, gomock.Any()).Return(nil)
	storeEcho(tx)

	posted, err := l.Post(context.Background(), tx, ledger.Entry{
		UserID: userID,
		Type:   domain.TransactionTypeWithdrawal,
		Amount: d("-10"),
	})
	require.NoError(t, err)
	require.True(t, posted.BalanceAfter.IsZero())
}

func TestLedger_Post_Validation(t *testing.T) {
	ctrl, _, l := newTestLedger(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())
	ctx := context.Background()

	_, err := l.Post(ctx, tx, ledger.Entry{UserID: userID, Type: domain.TransactionTypeDeposit})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = l.Post(ctx, tx, ledger.Entry{UserID: userID, Type: "bonus", Amount: d("1")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = l.Post(ctx, tx, ledger.Entry{UserID: userID, Type: domain.TransactionTypeDeposit, Amount: d("1.001")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	tx.EXPECT().LockUser(gomock.Any(), userID).Return(nil, nil)
	_, err = l.Post(ctx, tx, ledger.Entry{UserID: userID, Type: domain.TransactionTypeDeposit, Amount: d("5")})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	tx.EXPECT().LockUser(gomock.Any(), userID).Return(nil, storage.ErrNotInTx)
	_, err = l.Post(ctx, tx, ledger.Entry{UserID: userID, Type: domain.TransactionTypeDeposit, Amount: d("5")})
	require.ErrorIs(t, err, storage.ErrNotInTx)
}

func TestLedger_Adjust(t *testing.T) {
	ctrl, st, l := newTestLedger(t)
	adminID := domain.UserID(uuid.New())
	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockUser(gomock.Any(), userID).Return(&domain.User{ID: userID, Balance: d("5")}, nil)
		tx.EXPECT().SetUserBalance(gomock.Any(), userID, gomock.Any()).Return(nil)
		tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
				require.Equal(t, domain.TransactionTypeAdjustment, txn.Type)
				require.NotNil(t, txn.CreatedBy)
				require.Equal(t, adminID, *txn.CreatedBy)
				require.Equal(t, "goodwill credit", txn.Description)

				return &txn, nil
			})
	})

	posted, err := l.Adjust(context.Background(), adminID, userID, d("15"), "  goodwill credit ")
	require.NoError(t, err)
	require.True(t, posted.BalanceAfter.Equal(d("20")))

	_, err = l.Adjust(context.Background(), adminID, userID, d("15"), " ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestLedger_Balance(t *testing.T) {
	_, st, l := newTestLedger(t)
	userID := domain.UserID(uuid.New())

	st.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{Balance: d("42.10")}, nil)
	balance, err := l.Balance(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, balance.Equal(d("42.10")))

	st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, nil)
	_, err = l.Balance(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, errors.New("db down"))
	_, err = l.Balance(context.Background(), userID)
	require.Error(t, err)
}

func TestLedger_Transactions(t *testing.T) {
	_, st, l := newTestLedger(t)
	now := time.Now()

	_, err := l.Transactions(context.Background(), storage.TransactionFilter{From: now, To: now.Add(-time.Hour)})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	filter := storage.TransactionFilter{Type: domain.TransactionTypeRefund}
	st.EXPECT().Transactions(gomock.Any(), filter).Return(storage.Page[domain.Transaction]{
		Items: []domain.Transaction{{Type: domain.TransactionTypeRefund}},
	}, nil)
	page, err := l.Transactions(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
}
