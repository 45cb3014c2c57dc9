package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseID uniquely identifies a link purchase request.
type PurchaseID uuid.UUID

func (id PurchaseID) String() string { return uuid.UUID(id).String() }

// PurchaseStatus is the lifecycle state of a purchase request.
type PurchaseStatus string

const (
	// PurchaseStatusPending means the advertiser paid and waits for the publisher.
	PurchaseStatusPending PurchaseStatus = "pending"
	// PurchaseStatusAccepted means the publisher agreed to place the link.
	PurchaseStatusAccepted PurchaseStatus = "accepted"
	// PurchaseStatusArticleReady means the article is written and awaits the advertiser's approval.
	PurchaseStatusArticleReady PurchaseStatus = "article_ready"
	// PurchaseStatusPlacementPending means the article was approved and waits to be published.
	PurchaseStatusPlacementPending PurchaseStatus = "placement_pending"
	// PurchaseStatusPlacementCompleted means the link is live and the publisher was paid.
	PurchaseStatusPlacementCompleted PurchaseStatus = "placement_completed"
	// PurchaseStatusRejected means the request was declined and the advertiser refunded.
	PurchaseStatusRejected PurchaseStatus = "rejected"
	// PurchaseStatusCancelled means the advertiser withdrew a pending request and was refunded.
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
	// PurchaseStatusRefunded means a completed placement was refunded after a dispute.
	PurchaseStatusRefunded PurchaseStatus = "refunded"
)

// purchaseTransitions lists the statuses reachable from each status.
var purchaseTransitions = map[PurchaseStatus][]PurchaseStatus{ //nolint: gochecknoglobals
	PurchaseStatusPending: {
		PurchaseStatusAccepted,
		PurchaseStatusRejected,
		PurchaseStatusCancelled,
	},
	PurchaseStatusAccepted: {
		PurchaseStatusArticleReady,
		PurchaseStatusRejected,
	},
	PurchaseStatusArticleReady: {
		PurchaseStatusPlacementPending,
		PurchaseStatusAccepted,
	},
	PurchaseStatusPlacementPending: {
		PurchaseStatusPlacementCompleted,
	},
	PurchaseStatusPlacementCompleted: {
		PurchaseStatusRefunded,
	},
}

// Valid reports whether s is a known purchase status.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusAccepted, PurchaseStatusArticleReady,
		PurchaseStatusPlacementPending, PurchaseStatusPlacementCompleted,
		PurchaseStatusRejected, PurchaseStatusCancelled, PurchaseStatusRefunded:
		return true
	}

	return false
}

// CanTransitionTo reports whether a request in status s may move to status to.
func (s PurchaseStatus) CanTransitionTo(to PurchaseStatus) bool {
	for _, next := range purchaseTransitions[s] {
		if next == to {
			return true
		}
	}

	return false
}

// Terminal reports whether no further transition is possible from s.
func (s PurchaseStatus) Terminal() bool { return len(purchaseTransitions[s]) == 0 }

// Disputable reports whether a dispute may be opened for a request in status s.
func (s PurchaseStatus) Disputable() bool {
	switch s {
	case PurchaseStatusAccepted, PurchaseStatusArticleReady,
		PurchaseStatusPlacementPending, PurchaseStatusPlacementCompleted:
		return true
	}

	return false
}

// Purchase is an advertiser's order against a listing. Price and publisher
// are copied from the listing when the order is placed.
type Purchase struct {
	ID              PurchaseID
	ListingID       ListingID
	AdvertiserID    UserID
	PublisherID     UserID
	TargetURL       string
	AnchorText      string
	Notes           string
	Price           decimal.Decimal
	Commission      decimal.Decimal
	ArticleURL      string
	PlacementURL    string
	Status          PurchaseStatus
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Involves reports whether the user is the advertiser or the publisher of the request.
func (p *Purchase) Involves(userID UserID) bool {
	return p.AdvertiserID == userID || p.PublisherID == userID
}
