package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingID uniquely identifies a link listing.
type ListingID uuid.UUID

func (id ListingID) String() string { return uuid.UUID(id).String() }

// LinkType is the rel attribute a placement is sold with.
type LinkType string

const (
	LinkTypeDofollow LinkType = "dofollow"
	LinkTypeNofollow LinkType = "nofollow"
)

// Valid reports whether t is a known link type.
func (t LinkType) Valid() bool { return t == LinkTypeDofollow || t == LinkTypeNofollow }

// ListingStatus is the moderation state of a listing. Only active listings
// can be purchased.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusActive   ListingStatus = "active"
	ListingStatusInactive ListingStatus = "inactive"
	ListingStatusRejected ListingStatus = "rejected"
)

// Listing is a sellable backlink slot on a publisher's website.
type Listing struct {
	ID              ListingID
	WebsiteID       WebsiteID
	PublisherID     UserID
	Title           string
	Description     string
	Price           decimal.Decimal
	LinkType        LinkType
	Status          ListingStatus
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}
