package storage

import (
	"context"

	"backma/pkg/domain"

	"github.com/shopspring/decimal"
)

// PurchaseFilter narrows a purchase request query. Empty fields match everything.
type PurchaseFilter struct {
	AdvertiserID *domain.UserID
	PublisherID  *domain.UserID
	// PartyID matches requests where the user is either the advertiser or the publisher.
	PartyID   *domain.UserID
	ListingID *domain.ListingID
	Status    domain.PurchaseStatus
	Cursor
}

// PurchaseUpdates describes a status change of a purchase request along with
// the optional fields recorded by it. Only non-nil optional fields are written.
type PurchaseUpdates struct {
	Status          domain.PurchaseStatus
	Commission      *decimal.Decimal
	ArticleURL      *string
	PlacementURL    *string
	RejectionReason *string
}

// PurchaseStorage defines persistence of link purchase requests.
type PurchaseStorage interface {
	StorePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	// PurchaseByID returns nil when the request does not exist.
	PurchaseByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error)
	// LockPurchase reads the request with SELECT ... FOR UPDATE. It must be
	// called inside a transaction and returns nil when not found.
	LockPurchase(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error)
	// UpdatePurchase applies updates and returns the updated request, or nil when not found.
	UpdatePurchase(ctx context.Context, id domain.PurchaseID, updates PurchaseUpdates) (*domain.Purchase, error)
	Purchases(ctx context.Context, filter PurchaseFilter) (Page[domain.Purchase], error)
}
