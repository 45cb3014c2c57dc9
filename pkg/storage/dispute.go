package storage

import (
	"context"

	"backma/pkg/domain"
)

// DisputeFilter narrows a dispute query. Empty fields match everything.
type DisputeFilter struct {
	PurchaseID *domain.PurchaseID
	RaisedBy   *domain.UserID
	Status     domain.DisputeStatus
	Cursor
}

// DisputeUpdates describes a status change of a dispute. When ResolvedBy is
// set, resolved_at is stamped as well.
type DisputeUpdates struct {
	Status     domain.DisputeStatus
	Outcome    *domain.DisputeOutcome
	Resolution *string
	ResolvedBy *domain.UserID
}

// DisputeStorage defines persistence of disputes raised on purchase requests.
type DisputeStorage interface {
	StoreDispute(ctx context.Context, dispute domain.Dispute) (*domain.Dispute, error)
	// DisputeByID returns nil when the dispute does not exist.
	DisputeByID(ctx context.Context, id domain.DisputeID) (*domain.Dispute, error)
	// LockDispute reads the dispute with SELECT ... FOR UPDATE inside a transaction.
	LockDispute(ctx context.Context, id domain.DisputeID) (*domain.Dispute, error)
	// ActiveDisputeByPurchase returns the open or under review dispute of a
	// purchase request, or nil when there is none.
	ActiveDisputeByPurchase(ctx context.Context, purchaseID domain.PurchaseID) (*domain.Dispute, error)
	UpdateDispute(ctx context.Context, id domain.DisputeID, updates DisputeUpdates) (*domain.Dispute, error)
	Disputes(ctx context.Context, filter DisputeFilter) (Page[domain.Dispute], error)
}
