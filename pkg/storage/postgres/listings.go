package postgres

import (
	"context"
	"fmt"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	listingsTable = "link_listings"
)

func (p *PgSQL) StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	var row PgListing
	row.FromDomain(listing)

	var result PgListing
	if _, err := p.Builder.Insert(listingsTable).
		Rows(row).
		Returning(&PgListing{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store listing into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ListingByID(ctx context.Context, id domain.ListingID) (*domain.Listing, error) {
	var row PgListing
	found, err := p.Builder.From(listingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listing by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateListing sets the provided fields and updated_at. An empty
// RejectionReason is stored as NULL.
func (p *PgSQL) UpdateListing(ctx context.Context,
	id domain.ListingID,
	updates storage.ListingUpdates) (*domain.Listing, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "description", updates.Description)
	setIf(rec, "price", updates.Price)
	setIf(rec, "link_type", updates.LinkType)
	setIf(rec, "status", updates.Status)
	if updates.RejectionReason != nil {
		rec["rejection_reason"] = nullIfEmpty(*updates.RejectionReason)
	}

	var row PgListing
	found, err := p.Builder.Update(listingsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgListing{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update listing in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Listings(ctx context.Context, filter storage.ListingFilter) (storage.Page[domain.Listing], error) {
	var w []goqu.Expression
	if filter.WebsiteID != nil {
		w = append(w, goqu.I("website_id").Eq(uuid.UUID(*filter.WebsiteID)))
	}
	if filter.PublisherID != nil {
		w = append(w, goqu.I("publisher_id").Eq(uuid.UUID(*filter.PublisherID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(listingsTable).Where(w...), filter.Cursor,
		func(r *PgListing) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgListing).ToDomain)
	if err != nil {
		return storage.Page[domain.Listing]{}, fmt.Errorf("could not fetch listings from pg: %w", err)
	}

	return page, nil
}
