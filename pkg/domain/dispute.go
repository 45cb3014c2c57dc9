package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisputeID uniquely identifies a dispute.
type DisputeID uuid.UUID

func (id DisputeID) String() string { return uuid.UUID(id).String() }

// DisputeStatus is the lifecycle state of a dispute.
type DisputeStatus string

const (
	DisputeStatusOpen        DisputeStatus = "open"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusResolved    DisputeStatus = "resolved"
	DisputeStatusRejected    DisputeStatus = "rejected"
)

// Closed reports whether the dispute has been decided.
func (s DisputeStatus) Closed() bool {
	return s == DisputeStatusResolved || s == DisputeStatusRejected
}

// DisputeOutcome is the decision taken when resolving a dispute.
type DisputeOutcome string

const (
	// DisputeOutcomeRefund returns the purchase price to the advertiser.
	DisputeOutcomeRefund DisputeOutcome = "refund"
	// DisputeOutcomeRelease keeps the purchase as it is.
	DisputeOutcomeRelease DisputeOutcome = "release"
)

// Valid reports whether o is a known outcome.
func (o DisputeOutcome) Valid() bool { return o == DisputeOutcomeRefund || o == DisputeOutcomeRelease }

// Dispute is a complaint raised by one party of a purchase request and
// decided by an admin.
type Dispute struct {
	ID          DisputeID
	PurchaseID  PurchaseID
	RaisedBy    UserID
	Reason      string
	Description string
	Status      DisputeStatus
	Outcome     DisputeOutcome
	Resolution  string
	ResolvedBy  *UserID
	ResolvedAt  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
