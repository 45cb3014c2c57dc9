package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionID uniquely identifies a credit transaction.
type TransactionID uuid.UUID

func (id TransactionID) String() string { return uuid.UUID(id).String() }

// TransactionType classifies a balance movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeEarning    TransactionType = "earning"
	TransactionTypeService    TransactionType = "service"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeChargeback TransactionType = "chargeback"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypePurchase,
		TransactionTypeRefund, TransactionTypeEarning, TransactionTypeService,
		TransactionTypeAdjustment, TransactionTypeChargeback:
		return true
	}

	return false
}

// ReferenceType names the entity a transaction was posted for.
type ReferenceType string

const (
	ReferencePurchase       ReferenceType = "link_purchase_request"
	ReferenceServiceRequest ReferenceType = "service_request"
	ReferenceBalanceRequest ReferenceType = "balance_request"
	ReferenceDispute        ReferenceType = "dispute"
)

// Reference points a transaction to the entity that caused it. A zero
// Reference means a manual posting.
type Reference struct {
	Type ReferenceType
	ID   uuid.UUID
}

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool { return r.Type == "" }

// Transaction is an append-only record of a balance movement. Amount is
// signed: credits are positive and debits negative, and BalanceAfter always
// equals BalanceBefore plus Amount.
type Transaction struct {
	ID            TransactionID
	UserID        UserID
	Type          TransactionType
	Amount        decimal.Decimal
	Commission    decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Reference     Reference
	Description   string
	// CreatedBy is the admin who posted the transaction, nil for system postings.
	CreatedBy *UserID

	CreatedAt time.Time
}

// IsMoney reports whether d fits the two decimal precision of balances and
// prices. Trailing zeros are allowed, so 10.500 is money.
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
