// Package funding processes bank deposit and withdrawal requests. The money
// only moves once an admin approves a request.
package funding

import (
	"context"
	"fmt"
	"strings"

	"backma/internal/config"
	"backma/internal/ledger"
	"backma/internal/notify"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options configure the money rules of balance requests.
type Options struct {
	// DepositCommissionPercent is retained from every approved deposit.
	DepositCommissionPercent decimal.Decimal
	// MinWithdrawal is the smallest amount a withdrawal may request.
	MinWithdrawal decimal.Decimal
}

// NewOptions constructs an Options value from the marketplace rules.
func NewOptions(rules config.MarketplaceRules) Options {
	return Options{
		DepositCommissionPercent: rules.DepositCommissionPercent,
		MinWithdrawal:            rules.MinWithdrawal,
	}
}

type Deps struct {
	Storage  storage.Storage
	Ledger   ledger.Ledger
	Notifier *notify.Notifier
}

type funding struct {
	Deps
	options Options
}

func (f *funding) Submit(ctx context.Context, actor domain.Actor, req SubmitRequest) (*domain.BalanceRequest, error) {
	if !req.Type.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown request type %q", req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must be positive")
	}
	if !domain.IsMoney(req.Amount) {
		return nil, serrors.With(serrors.ErrBadRequest, "amount has more than 2 decimals")
	}

	if req.Type == domain.BalanceRequestWithdrawal {
		if req.Amount.LessThan(f.options.MinWithdrawal) {
			return nil, serrors.With(serrors.ErrBadRequest, "minimum withdrawal is %s", f.options.MinWithdrawal)
		}
		balance, err := f.Ledger.Balance(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get balance: %w", err)
		}
		if balance.LessThan(req.Amount) {
			return nil, serrors.With(serrors.ErrInsufficientBalance, "balance %s does not cover %s", balance, req.Amount)
		}
	}

	request, err := f.Storage.StoreBalanceRequest(ctx, domain.BalanceRequest{
		UserID:        actor.ID,
		Type:          req.Type,
		Amount:        req.Amount,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Reference:     strings.TrimSpace(req.Reference),
		Status:        domain.BalanceRequestStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store balance request: %w", err)
	}

	return request, nil
}

func (f *funding) Approve(ctx context.Context,
	actor domain.Actor,
	id domain.BalanceRequestID,
	note string) (*domain.BalanceRequest, error) {
	return f.process(ctx, actor, id, domain.BalanceRequestStatusApproved, note)
}

func (f *funding) Reject(ctx context.Context,
	actor domain.Actor,
	id domain.BalanceRequestID,
	note string) (*domain.BalanceRequest, error) {
	return f.process(ctx, actor, id, domain.BalanceRequestStatusRejected, note)
}

func (f *funding) process(ctx context.Context,
	actor domain.Actor,
	id domain.BalanceRequestID,
	status domain.BalanceRequestStatus,
	note string) (*domain.BalanceRequest, error) {
	if !actor.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only admins can process balance requests")
	}

	var processed *domain.BalanceRequest
	if err := f.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		request, err := tx.LockBalanceRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("could not lock balance request: %w", err)
		}
		if request == nil {
			return serrors.With(serrors.ErrNotFound, "balance request not found")
		}
		if request.Status != domain.BalanceRequestStatusPending {
			return serrors.With(serrors.ErrInvalidTransition, "balance request is already %s", request.Status)
		}

		decision := storage.BalanceRequestDecision{
			Status:      status,
			Commission:  decimal.Zero,
			AdminNote:   strings.TrimSpace(note),
			ProcessedBy: actor.ID,
		}

		var balance decimal.Decimal
		if status == domain.BalanceRequestStatusApproved {
			posted, commission, err := f.post(ctx, tx, actor, request)
			if err != nil {
				return err
			}
			decision.Commission = commission
			balance = posted.BalanceAfter
		} else {
			user, err := tx.UserByID(ctx, request.UserID)
			if err != nil {
				return fmt.Errorf("could not get user: %w", err)
			}
			if user != nil {
				balance = user.Balance
			}
		}

		if processed, err = tx.ProcessBalanceRequest(ctx, id, decision); err != nil {
			return fmt.Errorf("could not process balance request: %w", err)
		}

		return f.Notifier.EmailUser(ctx, tx, processed.UserID, notify.TemplateBalanceRequest, map[string]string{
			"Type":    string(processed.Type),
			"Amount":  processed.Amount.StringFixed(2),
			"Status":  string(processed.Status),
			"Note":    processed.AdminNote,
			"Balance": balance.StringFixed(2),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not process balance request: %w", err)
	}

	return processed, nil
}

// post credits an approved deposit net of commission, or debits an
// approved withdrawal in full.
func (f *funding) post(ctx context.Context,
	tx storage.AllStorage,
	actor domain.Actor,
	request *domain.BalanceRequest) (*domain.Transaction, decimal.Decimal, error) {
	entry := ledger.Entry{
		UserID:    request.UserID,
		Reference: domain.Reference{Type: domain.ReferenceBalanceRequest, ID: uuid.UUID(request.ID)},
		CreatedBy: &actor.ID,
	}
	commission := decimal.Zero

	switch request.Type {
	case domain.BalanceRequestDeposit:
		var (
			net decimal.Decimal
			err error
		)
		commission, net, err = ledger.SplitCommission(request.Amount, f.options.DepositCommissionPercent)
		if err != nil {
			return nil, commission, err
		}
		entry.Type = domain.TransactionTypeDeposit
		entry.Amount = net
		entry.Commission = commission
		entry.Description = "Bank deposit"
	case domain.BalanceRequestWithdrawal:
		entry.Type = domain.TransactionTypeWithdrawal
		entry.Amount = request.Amount.Neg()
		entry.Description = "Bank withdrawal"
	}

	posted, err := f.Ledger.Post(ctx, tx, entry)
	if err != nil {
		return nil, commission, fmt.Errorf("could not post %s: %w", request.Type, err)
	}

	return posted, commission, nil
}

// List returns balance requests matching filter. Non-admins see their own.
func (f *funding) List(ctx context.Context,
	actor domain.Actor,
	filter storage.BalanceRequestFilter) (storage.Page[domain.BalanceRequest], error) {
	if !actor.IsAdmin() {
		filter.UserID = &actor.ID
	}

	page, err := f.Storage.BalanceRequests(ctx, filter)
	if err != nil {
		return storage.Page[domain.BalanceRequest]{}, fmt.Errorf("could not list balance requests: %w", err)
	}

	return page, nil
}

// New creates a Funding service.
func New(deps Deps, options Options) Funding {
	return &funding{Deps: deps, options: options}
}
