package ledger

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
)

// Entry is a balance movement to post. Amount is signed: credits are
// positive, debits negative.
type Entry struct {
	UserID      domain.UserID
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Commission  decimal.Decimal
	Reference   domain.Reference
	Description string
	CreatedBy   *domain.UserID
}

//go:generate mockgen -package mockledger -source=interface.go -destination=mock/mockledger.go *
type Ledger interface {
	// Post applies entry within the transaction tx belongs to. It locks the
	// user row, refuses debits the balance cannot cover and appends the
	// transaction carrying both balances.
	Post(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error)
	// Adjust posts a manual credit or debit made by an admin in its own transaction.
	Adjust(ctx context.Context,
		adminID domain.UserID,
		userID domain.UserID,
		amount decimal.Decimal,
		description string) (*domain.Transaction, error)
	Balance(ctx context.Context, userID domain.UserID) (decimal.Decimal, error)
	Transactions(ctx context.Context, filter storage.TransactionFilter) (storage.Page[domain.Transaction], error)
}
