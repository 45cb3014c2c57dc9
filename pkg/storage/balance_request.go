package storage

import (
	"context"

	"backma/pkg/domain"

	"github.com/shopspring/decimal"
)

// BalanceRequestFilter narrows a balance request query. Empty fields match everything.
type BalanceRequestFilter struct {
	UserID *domain.UserID
	Type   domain.BalanceRequestType
	Status domain.BalanceRequestStatus
	Cursor
}

// BalanceRequestDecision records how an admin processed a balance request.
type BalanceRequestDecision struct {
	Status      domain.BalanceRequestStatus
	Commission  decimal.Decimal
	AdminNote   string
	ProcessedBy domain.UserID
}

// BalanceRequestStorage defines persistence of deposit and withdrawal requests.
type BalanceRequestStorage interface {
	StoreBalanceRequest(ctx context.Context, request domain.BalanceRequest) (*domain.BalanceRequest, error)
	// BalanceRequestByID returns nil when the request does not exist.
	BalanceRequestByID(ctx context.Context, id domain.BalanceRequestID) (*domain.BalanceRequest, error)
	// LockBalanceRequest reads the request with SELECT ... FOR UPDATE inside a transaction.
	LockBalanceRequest(ctx context.Context, id domain.BalanceRequestID) (*domain.BalanceRequest, error)
	// ProcessBalanceRequest stores the decision and stamps processed_at.
	ProcessBalanceRequest(ctx context.Context,
		id domain.BalanceRequestID,
		decision BalanceRequestDecision) (*domain.BalanceRequest, error)
	BalanceRequests(ctx context.Context, filter BalanceRequestFilter) (Page[domain.BalanceRequest], error)
}
