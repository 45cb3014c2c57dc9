package storage

import (
	"context"

	"backma/pkg/domain"
)

// WebsiteFilter narrows a website listing. Empty fields match everything.
type WebsiteFilter struct {
	OwnerID *domain.UserID
	Status  domain.WebsiteStatus
	Cursor
}

// WebsiteStorage defines persistence of publisher websites.
type WebsiteStorage interface {
	StoreWebsite(ctx context.Context, website domain.Website) (*domain.Website, error)
	// WebsiteByID returns nil when the website does not exist.
	WebsiteByID(ctx context.Context, id domain.WebsiteID) (*domain.Website, error)
	// UpdateWebsiteStatus sets the moderation status and reason, returning nil when not found.
	UpdateWebsiteStatus(ctx context.Context,
		id domain.WebsiteID,
		status domain.WebsiteStatus,
		reason string) (*domain.Website, error)
	Websites(ctx context.Context, filter WebsiteFilter) (Page[domain.Website], error)
}
