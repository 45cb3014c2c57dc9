package disputes_test

import (
	"context"
	"testing"

	"backma/internal/disputes"
	"backma/internal/ledger"
	mockledger "backma/internal/ledger/mock"
	"backma/internal/notify"
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

type fixture struct {
	ctrl     *gomock.Controller
	st       *mockstorage.MockStorage
	ledger   *mockledger.MockLedger
	disputes disputes.Disputes

	advertiser domain.Actor
	publisher  domain.Actor
	admin      domain.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:       ctrl,
		st:         mockstorage.NewMockStorage(ctrl),
		ledger:     mockledger.NewMockLedger(ctrl),
		advertiser: domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdvertiser},
		publisher:  domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RolePublisher},
		admin:      domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin},
	}
	f.disputes = disputes.New(disputes.Deps{
		Storage:  f.st,
		Ledger:   f.ledger,
		Notifier: notify.New(notify.Options{MaxAttempts: 5}),
	})

	return f
}

func (f *fixture) withTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().UserByID(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, id domain.UserID) (*domain.User, error) {
					return &domain.User{ID: id, Email: id.String() + "@example.com"}, nil
				}).AnyTimes()
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
			fn(tx)

			return cb(tx)
		},
	)
}

func (f *fixture) purchase(status domain.PurchaseStatus) *domain.Purchase {
	return &domain.Purchase{
		ID:           domain.PurchaseID(uuid.New()),
		AdvertiserID: f.advertiser.ID,
		PublisherID:  f.publisher.ID,
		Price:        d("100"),
		Commission:   d("20"),
		Status:       status,
	}
}

func echoDispute(d *domain.Dispute) func(context.Context, domain.DisputeID, storage.DisputeUpdates) (*domain.Dispute, error) {
	return func(_ context.Context, _ domain.DisputeID, u storage.DisputeUpdates) (*domain.Dispute, error) {
		updated := *d
		updated.Status = u.Status
		if u.Outcome != nil {
			updated.Outcome = *u.Outcome
		}
		if u.Resolution != nil {
			updated.Resolution = *u.Resolution
		}
		updated.ResolvedBy = u.ResolvedBy

		return &updated, nil
	}
}

func TestDisputes_Open(t *testing.T) {
	f := newFixture(t)
	p := f.purchase(domain.PurchaseStatusArticleReady)

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().ActiveDisputeByPurchase(gomock.Any(), p.ID).Return(nil, nil)
		tx.EXPECT().StoreDispute(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, dispute domain.Dispute) (*domain.Dispute, error) {
				require.Equal(t, domain.DisputeStatusOpen, dispute.Status)
				require.Equal(t, f.advertiser.ID, dispute.RaisedBy)
				dispute.ID = domain.DisputeID(uuid.New())

				return &dispute, nil
			})
	})

	dispute, err := f.disputes.Open(context.Background(), f.advertiser, disputes.OpenRequest{
		PurchaseID: p.ID,
		Reason:     "article never delivered",
	})
	require.NoError(t, err)
	require.Equal(t, p.ID, dispute.PurchaseID)
}

func TestDisputes_Open_Errors(t *testing.T) {
	t.Run("not disputable", func(t *testing.T) {
		f := newFixture(t)
		p := f.purchase(domain.PurchaseStatusPending)
		f.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		})

		_, err := f.disputes.Open(context.Background(), f.publisher, disputes.OpenRequest{PurchaseID: p.ID, Reason: "x"})
		require.ErrorIs(t, err, serrors.ErrInvalidTransition)
	})

	t.Run("already active", func(t *testing.T) {
		f := newFixture(t)
		p := f.purchase(domain.PurchaseStatusAccepted)
		f.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
			tx.EXPECT().ActiveDisputeByPurchase(gomock.Any(), p.ID).Return(&domain.Dispute{}, nil)
		})

		_, err := f.disputes.Open(context.Background(), f.publisher, disputes.OpenRequest{PurchaseID: p.ID, Reason: "x"})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("not a party", func(t *testing.T) {
		f := newFixture(t)
		p := f.purchase(domain.PurchaseStatusAccepted)
		f.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		})

		_, err := f.disputes.Open(context.Background(), f.admin, disputes.OpenRequest{PurchaseID: p.ID, Reason: "x"})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("reason required", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.disputes.Open(context.Background(), f.publisher, disputes.OpenRequest{Reason: "  "})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestDisputes_Review(t *testing.T) {
	f := newFixture(t)
	dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), Status: domain.DisputeStatusOpen}

	_, err := f.disputes.Review(context.Background(), f.publisher, dispute.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
		tx.EXPECT().UpdateDispute(gomock.Any(), dispute.ID, storage.DisputeUpdates{
			Status: domain.DisputeStatusUnderReview,
		}).DoAndReturn(echoDispute(dispute))
	})
	reviewed, err := f.disputes.Review(context.Background(), f.admin, dispute.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeStatusUnderReview, reviewed.Status)
}

func TestDisputes_Resolve_RefundCompleted(t *testing.T) {
	f := newFixture(t)
	p := f.purchase(domain.PurchaseStatusPlacementCompleted)
	dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), PurchaseID: p.ID, Status: domain.DisputeStatusUnderReview}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
		tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		gomock.InOrder(
			f.ledger.EXPECT().Post(gomock.Any(), tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ storage.AllStorage, e ledger.Entry) (*domain.Transaction, error) {
					require.Equal(t, f.publisher.ID, e.UserID)
					require.Equal(t, domain.TransactionTypeChargeback, e.Type)
					require.True(t, e.Amount.Equal(d("-80")))

					return &domain.Transaction{}, nil
				}),
			f.ledger.EXPECT().Post(gomock.Any(), tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ storage.AllStorage, e ledger.Entry) (*domain.Transaction, error) {
					require.Equal(t, f.advertiser.ID, e.UserID)
					require.Equal(t, domain.TransactionTypeRefund, e.Type)
					require.True(t, e.Amount.Equal(d("100")))
					require.Equal(t, domain.ReferenceDispute, e.Reference.Type)

					return &domain.Transaction{}, nil
				}),
		)
		tx.EXPECT().UpdatePurchase(gomock.Any(), p.ID, storage.PurchaseUpdates{
			Status: domain.PurchaseStatusRefunded,
		}).Return(p, nil)
		tx.EXPECT().UpdateDispute(gomock.Any(), dispute.ID, gomock.Any()).DoAndReturn(echoDispute(dispute))
	})

	resolved, err := f.disputes.Resolve(context.Background(), f.admin, dispute.ID, domain.DisputeOutcomeRefund, "link removed")
	require.NoError(t, err)
	require.Equal(t, domain.DisputeStatusResolved, resolved.Status)
	require.Equal(t, domain.DisputeOutcomeRefund, resolved.Outcome)
	require.Equal(t, "link removed", resolved.Resolution)
	require.Equal(t, &f.admin.ID, resolved.ResolvedBy)
}

func TestDisputes_Resolve_RefundInProgress(t *testing.T) {
	f := newFixture(t)
	p := f.purchase(domain.PurchaseStatusArticleReady)
	dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), PurchaseID: p.ID, Status: domain.DisputeStatusOpen}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
		tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		f.ledger.EXPECT().Post(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, e ledger.Entry) (*domain.Transaction, error) {
				require.Equal(t, domain.TransactionTypeRefund, e.Type)

				return &domain.Transaction{}, nil
			})
		tx.EXPECT().UpdatePurchase(gomock.Any(), p.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PurchaseID, u storage.PurchaseUpdates) (*domain.Purchase, error) {
				require.Equal(t, domain.PurchaseStatusRejected, u.Status)
				require.NotNil(t, u.RejectionReason)

				return p, nil
			})
		tx.EXPECT().UpdateDispute(gomock.Any(), dispute.ID, gomock.Any()).DoAndReturn(echoDispute(dispute))
	})

	_, err := f.disputes.Resolve(context.Background(), f.admin, dispute.ID, domain.DisputeOutcomeRefund, "")
	require.NoError(t, err)
}

func TestDisputes_Resolve_RefundSettledPurchase(t *testing.T) {
	for _, status := range []domain.PurchaseStatus{
		domain.PurchaseStatusRejected,
		domain.PurchaseStatusCancelled,
		domain.PurchaseStatusRefunded,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			p := f.purchase(status)
			dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), PurchaseID: p.ID, Status: domain.DisputeStatusOpen}

			// no ledger post and no update may follow
			f.withTx(func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
				tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
			})

			_, err := f.disputes.Resolve(context.Background(), f.admin, dispute.ID, domain.DisputeOutcomeRefund, "")
			require.ErrorIs(t, err, serrors.ErrInvalidTransition)
		})
	}
}

func TestDisputes_Resolve_ChargebackInsufficient(t *testing.T) {
	f := newFixture(t)
	p := f.purchase(domain.PurchaseStatusPlacementCompleted)
	dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), PurchaseID: p.ID, Status: domain.DisputeStatusOpen}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
		tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		f.ledger.EXPECT().Post(gomock.Any(), tx, gomock.Any()).Return(nil, serrors.ErrInsufficientBalance)
	})

	_, err := f.disputes.Resolve(context.Background(), f.admin, dispute.ID, domain.DisputeOutcomeRefund, "")
	require.ErrorIs(t, err, serrors.ErrInsufficientBalance)
}

func TestDisputes_Resolve_Release(t *testing.T) {
	f := newFixture(t)
	p := f.purchase(domain.PurchaseStatusPlacementCompleted)
	dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), PurchaseID: p.ID, Status: domain.DisputeStatusOpen}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
		tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().UpdateDispute(gomock.Any(), dispute.ID, gomock.Any()).DoAndReturn(echoDispute(dispute))
	})

	resolved, err := f.disputes.Resolve(context.Background(), f.admin, dispute.ID, domain.DisputeOutcomeRelease, "")
	require.NoError(t, err)
	require.Equal(t, domain.DisputeOutcomeRelease, resolved.Outcome)
}

func TestDisputes_Reject(t *testing.T) {
	f := newFixture(t)
	p := f.purchase(domain.PurchaseStatusAccepted)
	dispute := &domain.Dispute{ID: domain.DisputeID(uuid.New()), PurchaseID: p.ID, Status: domain.DisputeStatusOpen}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), dispute.ID).Return(dispute, nil)
		tx.EXPECT().LockPurchase(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().UpdateDispute(gomock.Any(), dispute.ID, gomock.Any()).DoAndReturn(echoDispute(dispute))
	})
	rejected, err := f.disputes.Reject(context.Background(), f.admin, dispute.ID, "no evidence")
	require.NoError(t, err)
	require.Equal(t, domain.DisputeStatusRejected, rejected.Status)

	closed := &domain.Dispute{ID: domain.DisputeID(uuid.New()), Status: domain.DisputeStatusResolved}
	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDispute(gomock.Any(), closed.ID).Return(closed, nil)
	})
	_, err = f.disputes.Reject(context.Background(), f.admin, closed.ID, "")
	require.ErrorIs(t, err, serrors.ErrInvalidTransition)
}

func TestDisputes_List_ScopesNonAdmins(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().Disputes(gomock.Any(), storage.DisputeFilter{RaisedBy: &f.publisher.ID}).
		Return(storage.Page[domain.Dispute]{}, nil)
	_, err := f.disputes.List(context.Background(), f.publisher, storage.DisputeFilter{})
	require.NoError(t, err)
}
