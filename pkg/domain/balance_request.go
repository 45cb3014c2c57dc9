package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceRequestID uniquely identifies a balance request.
type BalanceRequestID uuid.UUID

func (id BalanceRequestID) String() string { return uuid.UUID(id).String() }

// BalanceRequestType tells whether money flows in or out of the platform.
type BalanceRequestType string

const (
	BalanceRequestDeposit    BalanceRequestType = "deposit"
	BalanceRequestWithdrawal BalanceRequestType = "withdrawal"
)

// Valid reports whether t is a known balance request type.
func (t BalanceRequestType) Valid() bool {
	return t == BalanceRequestDeposit || t == BalanceRequestWithdrawal
}

// BalanceRequestStatus is the processing state of a balance request.
type BalanceRequestStatus string

const (
	BalanceRequestStatusPending  BalanceRequestStatus = "pending"
	BalanceRequestStatusApproved BalanceRequestStatus = "approved"
	BalanceRequestStatusRejected BalanceRequestStatus = "rejected"
)

// BalanceRequest asks an admin to confirm a bank deposit or pay out a
// withdrawal. Commission is filled when a deposit is approved.
type BalanceRequest struct {
	ID            BalanceRequestID
	UserID        UserID
	Type          BalanceRequestType
	Amount        decimal.Decimal
	Commission    decimal.Decimal
	PaymentMethod string
	Reference     string
	Status        BalanceRequestStatus
	AdminNote     string
	ProcessedBy   *UserID
	ProcessedAt   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
