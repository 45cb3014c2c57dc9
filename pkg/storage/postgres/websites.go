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
	websitesTable = "websites"
)

func (p *PgSQL) StoreWebsite(ctx context.Context, website domain.Website) (*domain.Website, error) {
	var row PgWebsite
	row.FromDomain(website)

	var result PgWebsite
	if _, err := p.Builder.Insert(websitesTable).
		Rows(row).
		Returning(&PgWebsite{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store website into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) WebsiteByID(ctx context.Context, id domain.WebsiteID) (*domain.Website, error) {
	var row PgWebsite
	found, err := p.Builder.From(websitesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch website by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateWebsiteStatus sets status and rejection_reason. An empty reason clears it.
func (p *PgSQL) UpdateWebsiteStatus(ctx context.Context,
	id domain.WebsiteID,
	status domain.WebsiteStatus,
	reason string) (*domain.Website, error) {
	var row PgWebsite
	found, err := p.Builder.Update(websitesTable).
		Set(goqu.Record{
			"status":           string(status),
			"rejection_reason": nullIfEmpty(reason),
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgWebsite{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update website status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Websites(ctx context.Context, filter storage.WebsiteFilter) (storage.Page[domain.Website], error) {
	var w []goqu.Expression
	if filter.OwnerID != nil {
		w = append(w, goqu.I("owner_id").Eq(uuid.UUID(*filter.OwnerID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(websitesTable).Where(w...), filter.Cursor,
		func(r *PgWebsite) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgWebsite).ToDomain)
	if err != nil {
		return storage.Page[domain.Website]{}, fmt.Errorf("could not fetch websites from pg: %w", err)
	}

	return page, nil
}
