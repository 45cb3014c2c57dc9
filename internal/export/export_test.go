package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"backma/internal/export"
	"backma/pkg/domain"
	"backma/pkg/storage"
	mockstorage "backma/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExporter_Transactions_PagesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	userID := domain.UserID(uuid.New())
	// one database transaction: every row shares created_at
	createdAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	txn := func(amount string) domain.Transaction {
		return domain.Transaction{
			ID:           domain.TransactionID(uuid.New()),
			UserID:       userID,
			Type:         domain.TransactionTypeDeposit,
			Amount:       decimal.RequireFromString(amount),
			BalanceAfter: decimal.RequireFromString(amount),
			Reference:    domain.Reference{Type: domain.ReferenceBalanceRequest, ID: uuid.New()},
			CreatedAt:    createdAt,
		}
	}
	first, second := txn("10"), txn("20.5")
	cursor := storage.Position{CreatedAt: createdAt, ID: uuid.UUID(second.ID)}

	gomock.InOrder(
		st.EXPECT().Transactions(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f storage.TransactionFilter) (storage.Page[domain.Transaction], error) {
				require.Equal(t, uint(export.DefaultPageSize), f.Limit)
				require.Nil(t, f.After)
				require.Equal(t, &userID, f.UserID)

				return storage.Page[domain.Transaction]{
					Items:      []domain.Transaction{first, second},
					NextCursor: &cursor,
				}, nil
			}),
		st.EXPECT().Transactions(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f storage.TransactionFilter) (storage.Page[domain.Transaction], error) {
				require.Equal(t, &cursor, f.After)

				return storage.Page[domain.Transaction]{Items: []domain.Transaction{txn("5")}}, nil
			}),
	)

	var buf bytes.Buffer
	n, err := export.New(st).Transactions(context.Background(), &buf, storage.TransactionFilter{UserID: &userID})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, "id", records[0][0])
	require.Equal(t, "20.50", records[2][3])
	require.Equal(t, "balance_request", records[1][7])
	require.Equal(t, "2025-05-01T12:00:00Z", records[3][11])
}

func TestExporter_Users_OmitsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	st.EXPECT().Users(gomock.Any(), gomock.Any()).Return(storage.Page[domain.User]{Items: []domain.User{{
		ID:           domain.UserID(uuid.New()),
		Email:        "a@example.com",
		FullName:     "Doe, Jane",
		Role:         domain.RoleAdvertiser,
		Status:       domain.UserStatusActive,
		PasswordHash: "$2a$10$secret",
	}}}, nil)

	var buf bytes.Buffer
	_, err := export.New(st).Users(context.Background(), &buf, storage.UserFilter{Cursor: storage.Cursor{Limit: 10}})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "$2a$10$secret")
	require.Contains(t, buf.String(), `"Doe, Jane"`)
}

func TestExporter_Purchases_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := export.New(st).Purchases(ctx, &bytes.Buffer{}, storage.PurchaseFilter{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFilename(t *testing.T) {
	require.Equal(t, "users-1700000000.csv", export.Filename(export.KindUsers, time.Unix(1700000000, 0)))
}
