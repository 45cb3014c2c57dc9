package storage

import (
	"context"
	"time"

	"backma/pkg/domain"
)

// TransactionFilter narrows a credit transaction query. Zero fields match everything.
type TransactionFilter struct {
	UserID *domain.UserID
	Type   domain.TransactionType
	// From and To bound created_at, inclusively and exclusively.
	From time.Time
	To   time.Time
	Cursor
}

// TransactionStorage defines persistence of the append-only credit ledger.
type TransactionStorage interface {
	// StoreTransaction appends a ledger row and returns it as stored.
	StoreTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
	Transactions(ctx context.Context, filter TransactionFilter) (Page[domain.Transaction], error)
}
