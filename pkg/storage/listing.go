package storage

import (
	"context"

	"backma/pkg/domain"

	"github.com/shopspring/decimal"
)

// ListingFilter narrows a listing query. Empty fields match everything.
type ListingFilter struct {
	WebsiteID   *domain.WebsiteID
	PublisherID *domain.UserID
	Status      domain.ListingStatus
	Cursor
}

// ListingUpdates describes optional listing fields to change. Only non-nil
// fields are written. An empty RejectionReason clears it.
type ListingUpdates struct {
	Title           *string
	Description     *string
	Price           *decimal.Decimal
	LinkType        *domain.LinkType
	Status          *domain.ListingStatus
	RejectionReason *string
}

// ListingStorage defines persistence of link listings.
type ListingStorage interface {
	StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	// ListingByID returns nil when the listing does not exist.
	ListingByID(ctx context.Context, id domain.ListingID) (*domain.Listing, error)
	// UpdateListing applies updates and returns the updated listing, or nil when not found.
	UpdateListing(ctx context.Context, id domain.ListingID, updates ListingUpdates) (*domain.Listing, error)
	Listings(ctx context.Context, filter ListingFilter) (Page[domain.Listing], error)
}
