package catalog_test

import (
	"context"
	"testing"

	"backma/internal/catalog"
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
	ctrl    *gomock.Controller
	st      *mockstorage.MockStorage
	ledger  *mockledger.MockLedger
	catalog catalog.Catalog

	user  domain.Actor
	admin domain.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:   ctrl,
		st:     mockstorage.NewMockStorage(ctrl),
		ledger: mockledger.NewMockLedger(ctrl),
		user:   domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdvertiser},
		admin:  domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin},
	}
	f.catalog = catalog.New(catalog.Deps{
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
			tx.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(&domain.User{Email: "user@example.com"}, nil).AnyTimes()
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
			fn(tx)

			return cb(tx)
		},
	)
}

func TestCatalog_CreateService(t *testing.T) {
	f := newFixture(t)
	draft := catalog.ServiceDraft{Name: " SEO audit ", Price: d("300"), DeliveryDays: 7}

	_, err := f.catalog.CreateService(context.Background(), f.user, draft)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	for _, price := range []string{"-1", "0", "12.345"} {
		_, err = f.catalog.CreateService(context.Background(), f.admin, catalog.ServiceDraft{Name: "x", Price: d(price)})
		require.ErrorIs(t, err, serrors.ErrBadRequest, price)
	}

	f.st.EXPECT().StoreService(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.Service) (*domain.Service, error) { return &s, nil })
	service, err := f.catalog.CreateService(context.Background(), f.admin, draft)
	require.NoError(t, err)
	require.Equal(t, "SEO audit", service.Name)
	require.Equal(t, domain.ServiceStatusActive, service.Status)
}

func TestCatalog_UpdateService_RejectsFreePrice(t *testing.T) {
	f := newFixture(t)
	zero := d("0")

	_, err := f.catalog.UpdateService(context.Background(), f.admin, domain.ServiceID(uuid.New()),
		storage.ServiceUpdates{Price: &zero})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	price := d("250.00")
	id := domain.ServiceID(uuid.New())
	f.st.EXPECT().UpdateService(gomock.Any(), id, storage.ServiceUpdates{Price: &price}).
		Return(&domain.Service{ID: id, Price: price}, nil)
	updated, err := f.catalog.UpdateService(context.Background(), f.admin, id, storage.ServiceUpdates{Price: &price})
	require.NoError(t, err)
	require.True(t, updated.Price.Equal(price))
}

func TestCatalog_Services_NonAdminSeesActive(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().Services(gomock.Any(), storage.ServiceFilter{Status: domain.ServiceStatusActive}).
		Return(storage.Page[domain.Service]{}, nil)
	_, err := f.catalog.Services(context.Background(), f.user, storage.ServiceFilter{Status: domain.ServiceStatusInactive})
	require.NoError(t, err)
}

func TestCatalog_Request(t *testing.T) {
	f := newFixture(t)
	service := &domain.Service{ID: domain.ServiceID(uuid.New()), Name: "Audit", Price: d("300"), Status: domain.ServiceStatusActive}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ServiceByID(gomock.Any(), service.ID).Return(service, nil)
		tx.EXPECT().StoreServiceRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.ServiceRequest) (*domain.ServiceRequest, error) {
				r.ID = domain.ServiceRequestID(uuid.New())

				return &r, nil
			})
		f.ledger.EXPECT().Post(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, e ledger.Entry) (*domain.Transaction, error) {
				require.Equal(t, domain.TransactionTypeService, e.Type)
				require.True(t, e.Amount.Equal(d("-300")))
				require.Equal(t, domain.ReferenceServiceRequest, e.Reference.Type)

				return &domain.Transaction{}, nil
			})
	})

	request, err := f.catalog.Request(context.Background(), f.user, service.ID, "homepage only")
	require.NoError(t, err)
	require.Equal(t, domain.ServiceRequestStatusPending, request.Status)
	require.True(t, request.Price.Equal(service.Price))
}

func TestCatalog_Request_Inactive(t *testing.T) {
	f := newFixture(t)
	service := &domain.Service{ID: domain.ServiceID(uuid.New()), Status: domain.ServiceStatusInactive}

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ServiceByID(gomock.Any(), service.ID).Return(service, nil)
	})
	_, err := f.catalog.Request(context.Background(), f.user, service.ID, "")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_UpdateRequest(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.ServiceRequestStatus
		to     domain.ServiceRequestStatus
		refund bool
		err    error
	}{
		{name: "start", from: domain.ServiceRequestStatusPending, to: domain.ServiceRequestStatusInProgress},
		{name: "complete", from: domain.ServiceRequestStatusInProgress, to: domain.ServiceRequestStatusCompleted},
		{name: "cancel pending", from: domain.ServiceRequestStatusPending, to: domain.ServiceRequestStatusCancelled, refund: true},
		{name: "cancel in progress", from: domain.ServiceRequestStatusInProgress, to: domain.ServiceRequestStatusCancelled, refund: true},
		{
			name: "completed is final",
			from: domain.ServiceRequestStatusCompleted,
			to:   domain.ServiceRequestStatusCancelled,
			err:  serrors.ErrInvalidTransition,
		},
		{
			name: "skip in progress",
			from: domain.ServiceRequestStatusPending,
			to:   domain.ServiceRequestStatusCompleted,
			err:  serrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			request := &domain.ServiceRequest{
				ID:        domain.ServiceRequestID(uuid.New()),
				ServiceID: domain.ServiceID(uuid.New()),
				UserID:    f.user.ID,
				Price:     d("300"),
				Status:    tt.from,
			}
			notes := "done"

			f.withTx(func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().LockServiceRequest(gomock.Any(), request.ID).Return(request, nil)
				if tt.err != nil {
					return
				}
				if tt.refund {
					f.ledger.EXPECT().Post(gomock.Any(), tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ storage.AllStorage, e ledger.Entry) (*domain.Transaction, error) {
							require.Equal(t, domain.TransactionTypeRefund, e.Type)
							require.True(t, e.Amount.Equal(d("300")))

							return &domain.Transaction{}, nil
						})
				}
				tx.EXPECT().UpdateServiceRequest(gomock.Any(), request.ID, tt.to, &notes).DoAndReturn(
					func(_ context.Context,
						_ domain.ServiceRequestID,
						status domain.ServiceRequestStatus,
						adminNotes *string) (*domain.ServiceRequest, error) {
						updated := *request
						updated.Status = status
						updated.AdminNotes = *adminNotes

						return &updated, nil
					})
				tx.EXPECT().ServiceByID(gomock.Any(), request.ServiceID).Return(&domain.Service{Name: "Audit"}, nil)
			})

			updated, err := f.catalog.UpdateRequest(context.Background(), f.admin, request.ID, tt.to, &notes)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.to, updated.Status)
		})
	}
}
