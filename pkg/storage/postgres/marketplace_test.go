package postgres_test

import (
	"testing"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Purchases(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	publisher := seedUser(t, pg, "pub@example.com", domain.RolePublisher, "0")
	advertiser := seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "500")
	other := seedUser(t, pg, "other@example.com", domain.RoleAdvertiser, "0")
	listing := seedListing(t, pg, publisher, "120.00")
	purchase := seedPurchase(t, pg, advertiser, listing)

	require.Equal(t, domain.PurchaseStatusPending, purchase.Status)
	require.Empty(t, purchase.ArticleURL)

	articleURL := "https://docs.example.com/draft"
	commission := decimal.NewFromInt(24)
	updated, err := pg.UpdatePurchase(ctx, purchase.ID, storage.PurchaseUpdates{
		Status:     domain.PurchaseStatusArticleReady,
		ArticleURL: &articleURL,
		Commission: &commission,
	})
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusArticleReady, updated.Status)
	require.Equal(t, articleURL, updated.ArticleURL)
	require.True(t, updated.Commission.Equal(commission))

	missing, err := pg.UpdatePurchase(ctx, domain.PurchaseID(uuid.New()), storage.PurchaseUpdates{
		Status: domain.PurchaseStatusAccepted,
	})
	require.NoError(t, err)
	require.Nil(t, missing)

	party := publisher.ID
	page, err := pg.Purchases(ctx, storage.PurchaseFilter{PartyID: &party})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	party = other.ID
	page, err = pg.Purchases(ctx, storage.PurchaseFilter{PartyID: &party})
	require.NoError(t, err)
	require.Empty(t, page.Items)

	_, err = pg.LockPurchase(ctx, purchase.ID)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		locked, err := s.LockPurchase(ctx, purchase.ID)
		require.NoError(t, err)
		require.Equal(t, purchase.ID, locked.ID)

		return nil
	})
	require.NoError(t, err)
}

func TestPgSQL_Transactions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	admin := seedUser(t, pg, "admin@back.ma", domain.RoleAdmin, "0")
	user := seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "0")

	deposit, err := pg.StoreTransaction(ctx, domain.Transaction{
		UserID:        user.ID,
		Type:          domain.TransactionTypeDeposit,
		Amount:        decimal.NewFromInt(100),
		BalanceBefore: decimal.Zero,
		BalanceAfter:  decimal.NewFromInt(100),
		Reference:     domain.Reference{Type: domain.ReferenceBalanceRequest, ID: uuid.New()},
		Description:   "bank transfer",
		CreatedBy:     &admin.ID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ReferenceBalanceRequest, deposit.Reference.Type)
	require.NotNil(t, deposit.CreatedBy)

	_, err = pg.StoreTransaction(ctx, domain.Transaction{
		UserID:        user.ID,
		Type:          domain.TransactionTypePurchase,
		Amount:        decimal.NewFromInt(-30),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(70),
	})
	require.NoError(t, err)

	// rows whose balances do not add up are rejected
	_, err = pg.StoreTransaction(ctx, domain.Transaction{
		UserID:        user.ID,
		Type:          domain.TransactionTypeAdjustment,
		Amount:        decimal.NewFromInt(5),
		BalanceBefore: decimal.NewFromInt(70),
		BalanceAfter:  decimal.NewFromInt(80),
	})
	require.Error(t, err)

	all, err := pg.Transactions(ctx, storage.TransactionFilter{UserID: &user.ID})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	require.Equal(t, domain.TransactionTypePurchase, all.Items[0].Type)
	require.True(t, all.Items[0].Reference.IsZero())

	deposits, err := pg.Transactions(ctx, storage.TransactionFilter{Type: domain.TransactionTypeDeposit})
	require.NoError(t, err)
	require.Len(t, deposits.Items, 1)

	future, err := pg.Transactions(ctx, storage.TransactionFilter{From: deposit.CreatedAt.AddDate(1, 0, 0)})
	require.NoError(t, err)
	require.Empty(t, future.Items)
}

func TestPgSQL_Transactions_PagesThroughTiedCreatedAt(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "0")

	// CURRENT_TIMESTAMP is the transaction start, so all three rows tie
	stored := map[domain.TransactionID]bool{}
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		balance := decimal.Zero
		for _, amount := range []int64{10, 20, 30} {
			next := balance.Add(decimal.NewFromInt(amount))
			txn, err := s.StoreTransaction(ctx, domain.Transaction{
				UserID:        user.ID,
				Type:          domain.TransactionTypeDeposit,
				Amount:        decimal.NewFromInt(amount),
				BalanceBefore: balance,
				BalanceAfter:  next,
			})
			require.NoError(t, err)
			stored[txn.ID] = true
			balance = next
		}

		return nil
	})
	require.NoError(t, err)

	seen := map[domain.TransactionID]bool{}
	cursor := storage.Cursor{Limit: 1}
	for {
		page, err := pg.Transactions(ctx, storage.TransactionFilter{UserID: &user.ID, Cursor: cursor})
		require.NoError(t, err)
		for _, txn := range page.Items {
			require.False(t, seen[txn.ID], "row returned twice")
			seen[txn.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor.After = page.NextCursor
	}
	require.Equal(t, stored, seen)
}

func TestPgSQL_Disputes(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	admin := seedUser(t, pg, "admin@back.ma", domain.RoleAdmin, "0")
	publisher := seedUser(t, pg, "pub@example.com", domain.RolePublisher, "0")
	advertiser := seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "0")
	purchase := seedPurchase(t, pg, advertiser, seedListing(t, pg, publisher, "50"))

	active, err := pg.ActiveDisputeByPurchase(ctx, purchase.ID)
	require.NoError(t, err)
	require.Nil(t, active)

	dispute, err := pg.StoreDispute(ctx, domain.Dispute{
		PurchaseID:  purchase.ID,
		RaisedBy:    advertiser.ID,
		Reason:      "link removed",
		Description: "the link disappeared after a week",
		Status:      domain.DisputeStatusOpen,
	})
	require.NoError(t, err)
	require.Nil(t, dispute.ResolvedBy)

	active, err = pg.ActiveDisputeByPurchase(ctx, purchase.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, dispute.ID, active.ID)

	outcome := domain.DisputeOutcomeRefund
	resolution := "refund approved"
	resolved, err := pg.UpdateDispute(ctx, dispute.ID, storage.DisputeUpdates{
		Status:     domain.DisputeStatusResolved,
		Outcome:    &outcome,
		Resolution: &resolution,
		ResolvedBy: &admin.ID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.DisputeOutcomeRefund, resolved.Outcome)
	require.False(t, resolved.ResolvedAt.IsZero())
	require.Equal(t, admin.ID, *resolved.ResolvedBy)

	active, err = pg.ActiveDisputeByPurchase(ctx, purchase.ID)
	require.NoError(t, err)
	require.Nil(t, active)

	page, err := pg.Disputes(ctx, storage.DisputeFilter{Status: domain.DisputeStatusResolved})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
}

func TestPgSQL_BalanceRequests(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	admin := seedUser(t, pg, "admin@back.ma", domain.RoleAdmin, "0")
	user := seedUser(t, pg, "pub@example.com", domain.RolePublisher, "300")

	request, err := pg.StoreBalanceRequest(ctx, domain.BalanceRequest{
		UserID:        user.ID,
		Type:          domain.BalanceRequestWithdrawal,
		Amount:        decimal.NewFromInt(150),
		PaymentMethod: "bank_transfer",
		Status:        domain.BalanceRequestStatusPending,
	})
	require.NoError(t, err)
	require.Nil(t, request.ProcessedBy)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		locked, err := s.LockBalanceRequest(ctx, request.ID)
		require.NoError(t, err)
		require.Equal(t, domain.BalanceRequestStatusPending, locked.Status)

		processed, err := s.ProcessBalanceRequest(ctx, request.ID, storage.BalanceRequestDecision{
			Status:      domain.BalanceRequestStatusApproved,
			Commission:  decimal.Zero,
			AdminNote:   "paid",
			ProcessedBy: admin.ID,
		})
		require.NoError(t, err)
		require.False(t, processed.ProcessedAt.IsZero())
		require.Equal(t, "paid", processed.AdminNote)

		return nil
	})
	require.NoError(t, err)

	pending, err := pg.BalanceRequests(ctx, storage.BalanceRequestFilter{Status: domain.BalanceRequestStatusPending})
	require.NoError(t, err)
	require.Empty(t, pending.Items)

	mine, err := pg.BalanceRequests(ctx, storage.BalanceRequestFilter{UserID: &user.ID})
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
}

func TestPgSQL_Services(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	user := seedUser(t, pg, "adv@example.com", domain.RoleAdvertiser, "0")

	service, err := pg.StoreService(ctx, domain.Service{
		Name:         "SEO audit",
		Category:     "audit",
		Price:        decimal.NewFromInt(90),
		DeliveryDays: 5,
		Status:       domain.ServiceStatusActive,
	})
	require.NoError(t, err)

	days := 7
	inactive := domain.ServiceStatusInactive
	service, err = pg.UpdateService(ctx, service.ID, storage.ServiceUpdates{DeliveryDays: &days, Status: &inactive})
	require.NoError(t, err)
	require.Equal(t, 7, service.DeliveryDays)
	require.Equal(t, domain.ServiceStatusInactive, service.Status)

	active, err := pg.Services(ctx, storage.ServiceFilter{Status: domain.ServiceStatusActive})
	require.NoError(t, err)
	require.Empty(t, active.Items)

	request, err := pg.StoreServiceRequest(ctx, domain.ServiceRequest{
		ServiceID: service.ID,
		UserID:    user.ID,
		Price:     service.Price,
		Status:    domain.ServiceRequestStatusPending,
	})
	require.NoError(t, err)

	notes := "started"
	request, err = pg.UpdateServiceRequest(ctx, request.ID, domain.ServiceRequestStatusInProgress, &notes)
	require.NoError(t, err)
	require.Equal(t, domain.ServiceRequestStatusInProgress, request.Status)
	require.Equal(t, "started", request.AdminNotes)

	requests, err := pg.ServiceRequests(ctx, storage.ServiceRequestFilter{ServiceID: &service.ID})
	require.NoError(t, err)
	require.Len(t, requests.Items, 1)
}
