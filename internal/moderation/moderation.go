// Package moderation covers the publisher side of the marketplace: websites
// and the link listings offered on them, both of which go live only after an
// admin approves them.
package moderation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"backma/internal/notify"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
)

type Deps struct {
	Storage  storage.Storage
	Notifier *notify.Notifier
}

type moderation struct {
	Deps
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "only admins can moderate")
	}

	return nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)

	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (m *moderation) SubmitWebsite(ctx context.Context, actor domain.Actor, draft WebsiteDraft) (*domain.Website, error) {
	if actor.Role != domain.RolePublisher {
		return nil, serrors.With(serrors.ErrForbidden, "only publishers can submit websites")
	}
	draft.URL = strings.TrimSpace(draft.URL)
	if !validURL(draft.URL) {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid website url")
	}
	if draft.DomainAuthority < 0 || draft.DomainAuthority > 100 || draft.MonthlyTraffic < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid website metrics")
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		name = draft.URL
	}

	website, err := m.Storage.StoreWebsite(ctx, domain.Website{
		OwnerID:         actor.ID,
		URL:             draft.URL,
		Name:            name,
		Description:     strings.TrimSpace(draft.Description),
		Category:        strings.TrimSpace(draft.Category),
		Language:        strings.TrimSpace(draft.Language),
		DomainAuthority: draft.DomainAuthority,
		MonthlyTraffic:  draft.MonthlyTraffic,
		Status:          domain.WebsiteStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store website: %w", err)
	}

	return website, nil
}

func (m *moderation) ApproveWebsite(ctx context.Context, actor domain.Actor, id domain.WebsiteID) (*domain.Website, error) {
	return m.moderateWebsite(ctx, actor, id, domain.WebsiteStatusApproved, "")
}

func (m *moderation) RejectWebsite(ctx context.Context,
	actor domain.Actor,
	id domain.WebsiteID,
	reason string) (*domain.Website, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "rejection reason is required")
	}

	return m.moderateWebsite(ctx, actor, id, domain.WebsiteStatusRejected, reason)
}

func (m *moderation) moderateWebsite(ctx context.Context,
	actor domain.Actor,
	id domain.WebsiteID,
	status domain.WebsiteStatus,
	reason string) (*domain.Website, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var website *domain.Website
	if err := m.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if website, err = tx.UpdateWebsiteStatus(ctx, id, status, reason); err != nil {
			return fmt.Errorf("could not update website: %w", err)
		}
		if website == nil {
			return serrors.With(serrors.ErrNotFound, "website not found")
		}

		return m.Notifier.EmailUser(ctx, tx, website.OwnerID, notify.TemplateWebsiteModerated, map[string]string{
			"Website": website.Name,
			"Status":  string(status),
			"Reason":  reason,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not moderate website: %w", err)
	}

	return website, nil
}

func (m *moderation) Websites(ctx context.Context,
	actor domain.Actor,
	filter storage.WebsiteFilter) (storage.Page[domain.Website], error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RolePublisher:
		filter.OwnerID = &actor.ID
	default:
		filter.Status = domain.WebsiteStatusApproved
	}

	page, err := m.Storage.Websites(ctx, filter)
	if err != nil {
		return storage.Page[domain.Website]{}, fmt.Errorf("could not list websites: %w", err)
	}

	return page, nil
}

func validListing(title string, price decimal.Decimal, linkType domain.LinkType) error {
	if title == "" {
		return serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if !price.IsPositive() || !domain.IsMoney(price) {
		return serrors.With(serrors.ErrBadRequest, "price must be positive with at most 2 decimals")
	}
	if !linkType.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown link type %q", linkType)
	}

	return nil
}

func (m *moderation) CreateListing(ctx context.Context, actor domain.Actor, draft ListingDraft) (*domain.Listing, error) {
	if actor.Role != domain.RolePublisher {
		return nil, serrors.With(serrors.ErrForbidden, "only publishers can create listings")
	}
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.LinkType == "" {
		draft.LinkType = domain.LinkTypeDofollow
	}
	if err := validListing(draft.Title, draft.Price, draft.LinkType); err != nil {
		return nil, err
	}

	website, err := m.Storage.WebsiteByID(ctx, draft.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not get website: %w", err)
	}
	if website == nil || website.OwnerID != actor.ID {
		return nil, serrors.With(serrors.ErrNotFound, "website not found")
	}
	if website.Status != domain.WebsiteStatusApproved {
		return nil, serrors.With(serrors.ErrConflict, "website is not approved")
	}

	listing, err := m.Storage.StoreListing(ctx, domain.Listing{
		WebsiteID:   website.ID,
		PublisherID: actor.ID,
		Title:       draft.Title,
		Description: strings.TrimSpace(draft.Description),
		Price:       draft.Price,
		LinkType:    draft.LinkType,
		Status:      domain.ListingStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store listing: %w", err)
	}

	return listing, nil
}

func (m *moderation) UpdateListing(ctx context.Context,
	actor domain.Actor,
	id domain.ListingID,
	edit ListingEdit) (*domain.Listing, error) {
	current, err := m.Storage.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if current == nil || (!actor.IsAdmin() && current.PublisherID != actor.ID) {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	title, price, linkType := current.Title, current.Price, current.LinkType
	updates := storage.ListingUpdates{Description: edit.Description, Price: edit.Price, LinkType: edit.LinkType}
	if edit.Title != nil {
		trimmed := strings.TrimSpace(*edit.Title)
		title, updates.Title = trimmed, &trimmed
	}
	if edit.Price != nil {
		price = *edit.Price
	}
	if edit.LinkType != nil {
		linkType = *edit.LinkType
	}
	if err := validListing(title, price, linkType); err != nil {
		return nil, err
	}

	if !actor.IsAdmin() &&
		(current.Status == domain.ListingStatusActive || current.Status == domain.ListingStatusRejected) {
		pending, cleared := domain.ListingStatusPending, ""
		updates.Status, updates.RejectionReason = &pending, &cleared
	}

	listing, err := m.Storage.UpdateListing(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update listing: %w", err)
	}
	if listing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	return listing, nil
}

func (m *moderation) ApproveListing(ctx context.Context, actor domain.Actor, id domain.ListingID) (*domain.Listing, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return m.setListingStatus(ctx, actor, id, domain.ListingStatusActive, "")
}

func (m *moderation) RejectListing(ctx context.Context,
	actor domain.Actor,
	id domain.ListingID,
	reason string) (*domain.Listing, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "rejection reason is required")
	}

	return m.setListingStatus(ctx, actor, id, domain.ListingStatusRejected, reason)
}

// DeactivateListing takes a listing off the market. Both admins and the
// owning publisher may do so.
func (m *moderation) DeactivateListing(ctx context.Context, actor domain.Actor, id domain.ListingID) (*domain.Listing, error) {
	return m.setListingStatus(ctx, actor, id, domain.ListingStatusInactive, "")
}

func (m *moderation) setListingStatus(ctx context.Context,
	actor domain.Actor,
	id domain.ListingID,
	status domain.ListingStatus,
	reason string) (*domain.Listing, error) {
	var listing *domain.Listing
	if err := m.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.ListingByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get listing: %w", err)
		}
		if current == nil || (!actor.IsAdmin() && current.PublisherID != actor.ID) {
			return serrors.With(serrors.ErrNotFound, "listing not found")
		}
		if current.Status == status {
			return serrors.With(serrors.ErrInvalidTransition, "listing is already %s", status)
		}

		if listing, err = tx.UpdateListing(ctx, id, storage.ListingUpdates{
			Status:          &status,
			RejectionReason: &reason,
		}); err != nil {
			return fmt.Errorf("could not update listing: %w", err)
		}
		if !actor.IsAdmin() {
			return nil
		}

		return m.Notifier.EmailUser(ctx, tx, listing.PublisherID, notify.TemplateListingModerated, map[string]string{
			"Listing": listing.Title,
			"Status":  string(status),
			"Reason":  reason,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not moderate listing: %w", err)
	}

	return listing, nil
}

func (m *moderation) GetListing(ctx context.Context, actor domain.Actor, id domain.ListingID) (*domain.Listing, error) {
	listing, err := m.Storage.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil ||
		(listing.Status != domain.ListingStatusActive && !actor.IsAdmin() && listing.PublisherID != actor.ID) {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	return listing, nil
}

func (m *moderation) Listings(ctx context.Context,
	actor domain.Actor,
	filter storage.ListingFilter) (storage.Page[domain.Listing], error) {
	own := filter.PublisherID != nil && *filter.PublisherID == actor.ID
	if !actor.IsAdmin() && !own {
		filter.Status = domain.ListingStatusActive
	}

	page, err := m.Storage.Listings(ctx, filter)
	if err != nil {
		return storage.Page[domain.Listing]{}, fmt.Errorf("could not list listings: %w", err)
	}

	return page, nil
}

// New creates a Moderation service.
func New(deps Deps) Moderation {
	return &moderation{Deps: deps}
}
