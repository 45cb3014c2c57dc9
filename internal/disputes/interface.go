package disputes

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"
)

// OpenRequest describes a new dispute on a purchase request.
type OpenRequest struct {
	PurchaseID  domain.PurchaseID
	Reason      string
	Description string
}

//go:generate mockgen -package mockdisputes -source=interface.go -destination=mock/mockdisputes.go *
type Disputes interface {
	// Open raises a dispute on a purchase the actor is a party to.
	Open(ctx context.Context, actor domain.Actor, req OpenRequest) (*domain.Dispute, error)
	// Review moves an open dispute under review.
	Review(ctx context.Context, actor domain.Actor, id domain.DisputeID) (*domain.Dispute, error)
	// Resolve closes a dispute with an outcome and settles the purchase accordingly.
	Resolve(ctx context.Context,
		actor domain.Actor,
		id domain.DisputeID,
		outcome domain.DisputeOutcome,
		resolution string) (*domain.Dispute, error)
	// Reject closes a dispute without moving money.
	Reject(ctx context.Context, actor domain.Actor, id domain.DisputeID, resolution string) (*domain.Dispute, error)
	Get(ctx context.Context, actor domain.Actor, id domain.DisputeID) (*domain.Dispute, error)
	List(ctx context.Context, actor domain.Actor, filter storage.DisputeFilter) (storage.Page[domain.Dispute], error)
}
