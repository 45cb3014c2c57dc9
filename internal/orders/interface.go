package orders

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"
)

// CreateRequest describes a new link purchase.
type CreateRequest struct {
	ListingID  domain.ListingID
	TargetURL  string
	AnchorText string
	Notes      string
}

// Details carries the fields a transition records.
type Details struct {
	// ArticleURL is required when moving to article_ready.
	ArticleURL string
	// PlacementURL is required when moving to placement_completed.
	PlacementURL string
	// Reason is required when moving to rejected.
	Reason string
}

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go *
type Orders interface {
	// Create places an order on an active listing and debits the advertiser the listing price.
	Create(ctx context.Context, actor domain.Actor, req CreateRequest) (*domain.Purchase, error)
	// Transition moves a purchase request to status to, applying its money side effects.
	Transition(ctx context.Context,
		actor domain.Actor,
		id domain.PurchaseID,
		to domain.PurchaseStatus,
		details Details) (*domain.Purchase, error)
	Get(ctx context.Context, actor domain.Actor, id domain.PurchaseID) (*domain.Purchase, error)
	List(ctx context.Context, actor domain.Actor, filter storage.PurchaseFilter) (storage.Page[domain.Purchase], error)
}
