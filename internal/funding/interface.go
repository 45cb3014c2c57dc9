package funding

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
)

// SubmitRequest describes a bank deposit or withdrawal request.
type SubmitRequest struct {
	Type          domain.BalanceRequestType
	Amount        decimal.Decimal
	PaymentMethod string
	Reference     string
}

//go:generate mockgen -package mockfunding -source=interface.go -destination=mock/mockfunding.go *
type Funding interface {
	// Submit files a pending balance request for the actor.
	Submit(ctx context.Context, actor domain.Actor, req SubmitRequest) (*domain.BalanceRequest, error)
	// Approve processes a pending request and moves the money.
	Approve(ctx context.Context, actor domain.Actor, id domain.BalanceRequestID, note string) (*domain.BalanceRequest, error)
	// Reject processes a pending request without moving money.
	Reject(ctx context.Context, actor domain.Actor, id domain.BalanceRequestID, note string) (*domain.BalanceRequest, error)
	List(ctx context.Context,
		actor domain.Actor,
		filter storage.BalanceRequestFilter) (storage.Page[domain.BalanceRequest], error)
}
