package moderation

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
)

// WebsiteDraft holds the fields a publisher submits for a website.
type WebsiteDraft struct {
	URL             string
	Name            string
	Description     string
	Category        string
	Language        string
	DomainAuthority int
	MonthlyTraffic  int64
}

// ListingDraft holds the fields of a new listing.
type ListingDraft struct {
	WebsiteID   domain.WebsiteID
	Title       string
	Description string
	Price       decimal.Decimal
	LinkType    domain.LinkType
}

// ListingEdit describes the listing fields a publisher may change. Only
// non-nil fields are written.
type ListingEdit struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	LinkType    *domain.LinkType
}

//go:generate mockgen -package mockmoderation -source=interface.go -destination=mock/mockmoderation.go *
type Moderation interface {
	SubmitWebsite(ctx context.Context, actor domain.Actor, draft WebsiteDraft) (*domain.Website, error)
	ApproveWebsite(ctx context.Context, actor domain.Actor, id domain.WebsiteID) (*domain.Website, error)
	RejectWebsite(ctx context.Context, actor domain.Actor, id domain.WebsiteID, reason string) (*domain.Website, error)
	// Websites lists websites. Publishers see their own and others see approved ones.
	Websites(ctx context.Context, actor domain.Actor, filter storage.WebsiteFilter) (storage.Page[domain.Website], error)

	CreateListing(ctx context.Context, actor domain.Actor, draft ListingDraft) (*domain.Listing, error)
	// UpdateListing edits a listing. A publisher editing a live or rejected
	// listing sends it back to moderation.
	UpdateListing(ctx context.Context, actor domain.Actor, id domain.ListingID, edit ListingEdit) (*domain.Listing, error)
	ApproveListing(ctx context.Context, actor domain.Actor, id domain.ListingID) (*domain.Listing, error)
	RejectListing(ctx context.Context, actor domain.Actor, id domain.ListingID, reason string) (*domain.Listing, error)
	DeactivateListing(ctx context.Context, actor domain.Actor, id domain.ListingID) (*domain.Listing, error)
	GetListing(ctx context.Context, actor domain.Actor, id domain.ListingID) (*domain.Listing, error)
	// Listings lists listings. Everyone but admins and the owning publisher only sees active ones.
	Listings(ctx context.Context, actor domain.Actor, filter storage.ListingFilter) (storage.Page[domain.Listing], error)
}
