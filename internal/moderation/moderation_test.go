package moderation_test

import (
	"context"
	"testing"

	"backma/internal/moderation"
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
	ctrl       *gomock.Controller
	st         *mockstorage.MockStorage
	moderation moderation.Moderation

	publisher  domain.Actor
	advertiser domain.Actor
	admin      domain.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:       ctrl,
		st:         mockstorage.NewMockStorage(ctrl),
		publisher:  domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RolePublisher},
		advertiser: domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdvertiser},
		admin:      domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin},
	}
	f.moderation = moderation.New(moderation.Deps{
		Storage:  f.st,
		Notifier: notify.New(notify.Options{MaxAttempts: 5}),
	})

	return f
}

// withTx expects a transaction and counts the emails it enqueues.
func (f *fixture) withTx(emails int, fn func(tx *mockstorage.MockAllStorage)) {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(&domain.User{Email: "pub@example.com"}, nil).Times(emails)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(emails)
			fn(tx)

			return cb(tx)
		},
	)
}

func TestModeration_SubmitWebsite(t *testing.T) {
	f := newFixture(t)
	draft := moderation.WebsiteDraft{URL: "https://blog.example.com", DomainAuthority: 42}

	_, err := f.moderation.SubmitWebsite(context.Background(), f.advertiser, draft)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = f.moderation.SubmitWebsite(context.Background(), f.publisher, moderation.WebsiteDraft{URL: "blog"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.moderation.SubmitWebsite(context.Background(), f.publisher, moderation.WebsiteDraft{
		URL:             "https://blog.example.com",
		DomainAuthority: 101,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.st.EXPECT().StoreWebsite(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w domain.Website) (*domain.Website, error) { return &w, nil })
	website, err := f.moderation.SubmitWebsite(context.Background(), f.publisher, draft)
	require.NoError(t, err)
	require.Equal(t, domain.WebsiteStatusPending, website.Status)
	require.Equal(t, f.publisher.ID, website.OwnerID)
	require.Equal(t, draft.URL, website.Name)
}

func TestModeration_RejectWebsite(t *testing.T) {
	f := newFixture(t)
	id := domain.WebsiteID(uuid.New())

	_, err := f.moderation.RejectWebsite(context.Background(), f.admin, id, " ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.moderation.ApproveWebsite(context.Background(), f.publisher, id)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.withTx(1, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateWebsiteStatus(gomock.Any(), id, domain.WebsiteStatusRejected, "spam").
			Return(&domain.Website{ID: id, OwnerID: f.publisher.ID, Status: domain.WebsiteStatusRejected}, nil)
	})
	website, err := f.moderation.RejectWebsite(context.Background(), f.admin, id, "spam")
	require.NoError(t, err)
	require.Equal(t, domain.WebsiteStatusRejected, website.Status)

	f.withTx(0, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateWebsiteStatus(gomock.Any(), id, domain.WebsiteStatusApproved, "").Return(nil, nil)
	})
	_, err = f.moderation.ApproveWebsite(context.Background(), f.admin, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestModeration_Websites_Scope(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().Websites(gomock.Any(), storage.WebsiteFilter{OwnerID: &f.publisher.ID}).Return(storage.Page[domain.Website]{}, nil)
	_, err := f.moderation.Websites(context.Background(), f.publisher, storage.WebsiteFilter{})
	require.NoError(t, err)

	f.st.EXPECT().Websites(gomock.Any(), storage.WebsiteFilter{Status: domain.WebsiteStatusApproved}).
		Return(storage.Page[domain.Website]{}, nil)
	_, err = f.moderation.Websites(context.Background(), f.advertiser, storage.WebsiteFilter{Status: domain.WebsiteStatusPending})
	require.NoError(t, err)
}

func TestModeration_CreateListing(t *testing.T) {
	f := newFixture(t)
	website := &domain.Website{ID: domain.WebsiteID(uuid.New()), OwnerID: f.publisher.ID, Status: domain.WebsiteStatusApproved}
	draft := moderation.ListingDraft{WebsiteID: website.ID, Title: "Sponsored post", Price: d("120")}

	f.st.EXPECT().WebsiteByID(gomock.Any(), website.ID).Return(website, nil)
	f.st.EXPECT().StoreListing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Listing) (*domain.Listing, error) { return &l, nil })
	listing, err := f.moderation.CreateListing(context.Background(), f.publisher, draft)
	require.NoError(t, err)
	require.Equal(t, domain.ListingStatusPending, listing.Status)
	require.Equal(t, domain.LinkTypeDofollow, listing.LinkType)

	pending := *website
	pending.Status = domain.WebsiteStatusPending
	f.st.EXPECT().WebsiteByID(gomock.Any(), website.ID).Return(&pending, nil)
	_, err = f.moderation.CreateListing(context.Background(), f.publisher, draft)
	require.ErrorIs(t, err, serrors.ErrConflict)

	other := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RolePublisher}
	f.st.EXPECT().WebsiteByID(gomock.Any(), website.ID).Return(website, nil)
	_, err = f.moderation.CreateListing(context.Background(), other, draft)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	draft.Price = d("0")
	_, err = f.moderation.CreateListing(context.Background(), f.publisher, draft)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestModeration_UpdateListing_ReturnsToPending(t *testing.T) {
	f := newFixture(t)
	listing := &domain.Listing{
		ID:          domain.ListingID(uuid.New()),
		PublisherID: f.publisher.ID,
		Title:       "Post",
		Price:       d("100"),
		LinkType:    domain.LinkTypeDofollow,
		Status:      domain.ListingStatusActive,
	}
	price := d("150")

	f.st.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
	f.st.EXPECT().UpdateListing(gomock.Any(), listing.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ListingID, u storage.ListingUpdates) (*domain.Listing, error) {
			require.NotNil(t, u.Status)
			require.Equal(t, domain.ListingStatusPending, *u.Status)
			require.True(t, u.Price.Equal(price))
			updated := *listing
			updated.Status = *u.Status
			updated.Price = *u.Price

			return &updated, nil
		})
	updated, err := f.moderation.UpdateListing(context.Background(), f.publisher, listing.ID, moderation.ListingEdit{Price: &price})
	require.NoError(t, err)
	require.Equal(t, domain.ListingStatusPending, updated.Status)

	f.st.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
	f.st.EXPECT().UpdateListing(gomock.Any(), listing.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ListingID, u storage.ListingUpdates) (*domain.Listing, error) {
			require.Nil(t, u.Status)

			return listing, nil
		})
	_, err = f.moderation.UpdateListing(context.Background(), f.admin, listing.ID, moderation.ListingEdit{Price: &price})
	require.NoError(t, err)
}

func TestModeration_ListingDecisions(t *testing.T) {
	f := newFixture(t)
	listing := &domain.Listing{ID: domain.ListingID(uuid.New()), PublisherID: f.publisher.ID, Status: domain.ListingStatusPending}

	_, err := f.moderation.ApproveListing(context.Background(), f.publisher, listing.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.withTx(1, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
		tx.EXPECT().UpdateListing(gomock.Any(), listing.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ListingID, u storage.ListingUpdates) (*domain.Listing, error) {
				updated := *listing
				updated.Status = *u.Status

				return &updated, nil
			})
	})
	approved, err := f.moderation.ApproveListing(context.Background(), f.admin, listing.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ListingStatusActive, approved.Status)

	active := *listing
	active.Status = domain.ListingStatusActive
	f.withTx(0, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(&active, nil)
		tx.EXPECT().UpdateListing(gomock.Any(), listing.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ListingID, u storage.ListingUpdates) (*domain.Listing, error) {
				updated := active
				updated.Status = *u.Status

				return &updated, nil
			})
	})
	deactivated, err := f.moderation.DeactivateListing(context.Background(), f.publisher, listing.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ListingStatusInactive, deactivated.Status)

	f.withTx(0, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(&active, nil)
	})
	_, err = f.moderation.ApproveListing(context.Background(), f.admin, listing.ID)
	require.ErrorIs(t, err, serrors.ErrInvalidTransition)
}

func TestModeration_Listings_PublicSeesActive(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().Listings(gomock.Any(), storage.ListingFilter{Status: domain.ListingStatusActive}).
		Return(storage.Page[domain.Listing]{}, nil)
	_, err := f.moderation.Listings(context.Background(), f.advertiser, storage.ListingFilter{})
	require.NoError(t, err)

	own := storage.ListingFilter{PublisherID: &f.publisher.ID, Status: domain.ListingStatusRejected}
	f.st.EXPECT().Listings(gomock.Any(), own).Return(storage.Page[domain.Listing]{}, nil)
	_, err = f.moderation.Listings(context.Background(), f.publisher, own)
	require.NoError(t, err)
}
