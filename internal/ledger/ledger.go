// Package ledger moves credit between users and the platform. Every movement
// is one credit_transactions row written together with the new balance under
// a row lock, so balance_after always equals balance_before plus amount and a
// debit never drives a balance below zero.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"backma/pkg/domain"
	"backma/pkg/metrics"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100) //nolint: gochecknoglobals

// SplitCommission splits amount into the platform commission, rounded to
// cents, and the remaining net amount. percent must be within [0, 100].
func SplitCommission(amount, percent decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, decimal.Zero, serrors.With(serrors.ErrBadRequest, "commission percent %s out of range", percent)
	}
	commission := amount.Mul(percent).Div(hundred).Round(2)

	return commission, amount.Sub(commission), nil
}

type ledger struct {
	storage  storage.Storage
	recorder *metrics.Recorder
}

func (l *ledger) Post(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error) {
	if !entry.Type.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown transaction type %q", entry.Type)
	}
	if entry.Amount.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must not be zero")
	}
	if !domain.IsMoney(entry.Amount) {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must not have more than two decimals")
	}

	user, err := tx.LockUser(ctx, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not lock user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	before := user.Balance
	after := before.Add(entry.Amount)
	if after.IsNegative() {
		return nil, serrors.With(serrors.ErrInsufficientBalance,
			"balance %s does not cover %s", before.StringFixed(2), entry.Amount.Neg().StringFixed(2))
	}

	if err := tx.SetUserBalance(ctx, entry.UserID, after); err != nil {
		return nil, fmt.Errorf("could not set balance: %w", err)
	}
	posted, err := tx.StoreTransaction(ctx, domain.Transaction{
		UserID:        entry.UserID,
		Type:          entry.Type,
		Amount:        entry.Amount,
		Commission:    entry.Commission,
		BalanceBefore: before,
		BalanceAfter:  after,
		Reference:     entry.Reference,
		Description:   entry.Description,
		CreatedBy:     entry.CreatedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store transaction: %w", err)
	}
	l.recorder.LedgerPosted(ctx, string(entry.Type), entry.Amount)

	return posted, nil
}

func (l *ledger) Adjust(ctx context.Context,
	adminID domain.UserID,
	userID domain.UserID,
	amount decimal.Decimal,
	description string) (*domain.Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "description is required")
	}

	var posted *domain.Transaction
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		posted, err = l.Post(ctx, tx, Entry{
			UserID:      userID,
			Type:        domain.TransactionTypeAdjustment,
			Amount:      amount,
			Description: description,
			CreatedBy:   &adminID,
		})

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not adjust balance: %w", err)
	}

	return posted, nil
}

func (l *ledger) Balance(ctx context.Context, userID domain.UserID) (decimal.Decimal, error) {
	user, err := l.storage.UserByID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return decimal.Zero, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user.Balance, nil
}

func (l *ledger) Transactions(ctx context.Context,
	filter storage.TransactionFilter) (storage.Page[domain.Transaction], error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return storage.Page[domain.Transaction]{}, serrors.With(serrors.ErrBadRequest, "from must be before to")
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return storage.Page[domain.Transaction]{}, serrors.With(serrors.ErrBadRequest, "unknown transaction type")
	}

	page, err := l.storage.Transactions(ctx, filter)
	if err != nil {
		return storage.Page[domain.Transaction]{}, fmt.Errorf("could not get transactions: %w", err)
	}

	return page, nil
}

// New creates a Ledger backed by the provided storage. recorder may be nil.
func New(storage storage.Storage, recorder *metrics.Recorder) Ledger {
	return &ledger{storage: storage, recorder: recorder}
}
