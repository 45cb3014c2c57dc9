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
	purchasesTable = "link_purchase_requests"
)

func (p *PgSQL) StorePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	var row PgPurchase
	row.FromDomain(purchase)

	var result PgPurchase
	if _, err := p.Builder.Insert(purchasesTable).
		Rows(row).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store purchase request into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) PurchaseByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.From(purchasesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch purchase request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LockPurchase(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.lockByID(ctx, purchasesTable, uuid.UUID(id), &row)
	if err != nil || !found {
		return nil, err
	}

	return row.ToDomain(), nil
}

// UpdatePurchase sets the status, the provided optional fields and updated_at.
func (p *PgSQL) UpdatePurchase(ctx context.Context,
	id domain.PurchaseID,
	updates storage.PurchaseUpdates) (*domain.Purchase, error) {
	rec := goqu.Record{
		"status":     string(updates.Status),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIf(rec, "commission", updates.Commission)
	setIf(rec, "article_url", updates.ArticleURL)
	setIf(rec, "placement_url", updates.PlacementURL)
	setIf(rec, "rejection_reason", updates.RejectionReason)

	var row PgPurchase
	found, err := p.Builder.Update(purchasesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update purchase request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Purchases(ctx context.Context, filter storage.PurchaseFilter) (storage.Page[domain.Purchase], error) {
	var w []goqu.Expression
	if filter.AdvertiserID != nil {
		w = append(w, goqu.I("advertiser_id").Eq(uuid.UUID(*filter.AdvertiserID)))
	}
	if filter.PublisherID != nil {
		w = append(w, goqu.I("publisher_id").Eq(uuid.UUID(*filter.PublisherID)))
	}
	if filter.PartyID != nil {
		party := uuid.UUID(*filter.PartyID)
		w = append(w, goqu.Or(
			goqu.I("advertiser_id").Eq(party),
			goqu.I("publisher_id").Eq(party),
		))
	}
	if filter.ListingID != nil {
		w = append(w, goqu.I("listing_id").Eq(uuid.UUID(*filter.ListingID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(purchasesTable).Where(w...), filter.Cursor,
		func(r *PgPurchase) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgPurchase).ToDomain)
	if err != nil {
		return storage.Page[domain.Purchase]{}, fmt.Errorf("could not fetch purchase requests from pg: %w", err)
	}

	return page, nil
}
