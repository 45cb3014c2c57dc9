package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteID uniquely identifies a publisher website.
type WebsiteID uuid.UUID

func (id WebsiteID) String() string { return uuid.UUID(id).String() }

// WebsiteStatus is the moderation state of a website.
type WebsiteStatus string

const (
	WebsiteStatusPending  WebsiteStatus = "pending"
	WebsiteStatusApproved WebsiteStatus = "approved"
	WebsiteStatusRejected WebsiteStatus = "rejected"
)

// Website is a site owned by a publisher on which backlinks can be placed.
type Website struct {
	ID              WebsiteID
	OwnerID         UserID
	URL             string
	Name            string
	Description     string
	Category        string
	Language        string
	DomainAuthority int
	MonthlyTraffic  int64
	Status          WebsiteStatus
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}
