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
	disputesTable = "disputes"
)

func (p *PgSQL) StoreDispute(ctx context.Context, dispute domain.Dispute) (*domain.Dispute, error) {
	var row PgDispute
	row.FromDomain(dispute)

	var result PgDispute
	if _, err := p.Builder.Insert(disputesTable).
		Rows(row).
		Returning(&PgDispute{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store dispute into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) DisputeByID(ctx context.Context, id domain.DisputeID) (*domain.Dispute, error) {
	var row PgDispute
	found, err := p.Builder.From(disputesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch dispute by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LockDispute(ctx context.Context, id domain.DisputeID) (*domain.Dispute, error) {
	var row PgDispute
	found, err := p.lockByID(ctx, disputesTable, uuid.UUID(id), &row)
	if err != nil || !found {
		return nil, err
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ActiveDisputeByPurchase(ctx context.Context, purchaseID domain.PurchaseID) (*domain.Dispute, error) {
	var row PgDispute
	found, err := p.Builder.From(disputesTable).
		Where(
			goqu.I("purchase_request_id").Eq(uuid.UUID(purchaseID)),
			goqu.I("status").In(string(domain.DisputeStatusOpen), string(domain.DisputeStatusUnderReview)),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active dispute: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateDispute sets the status and the provided decision fields. Setting
// ResolvedBy also stamps resolved_at.
func (p *PgSQL) UpdateDispute(ctx context.Context,
	id domain.DisputeID,
	updates storage.DisputeUpdates) (*domain.Dispute, error) {
	rec := goqu.Record{
		"status":     string(updates.Status),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIf(rec, "outcome", updates.Outcome)
	setIf(rec, "resolution", updates.Resolution)
	if updates.ResolvedBy != nil {
		rec["resolved_by"] = uuid.UUID(*updates.ResolvedBy)
		rec["resolved_at"] = goqu.L("CURRENT_TIMESTAMP")
	}

	var row PgDispute
	found, err := p.Builder.Update(disputesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgDispute{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update dispute in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Disputes(ctx context.Context, filter storage.DisputeFilter) (storage.Page[domain.Dispute], error) {
	var w []goqu.Expression
	if filter.PurchaseID != nil {
		w = append(w, goqu.I("purchase_request_id").Eq(uuid.UUID(*filter.PurchaseID)))
	}
	if filter.RaisedBy != nil {
		w = append(w, goqu.I("raised_by").Eq(uuid.UUID(*filter.RaisedBy)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(disputesTable).Where(w...), filter.Cursor,
		func(r *PgDispute) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgDispute).ToDomain)
	if err != nil {
		return storage.Page[domain.Dispute]{}, fmt.Errorf("could not fetch disputes from pg: %w", err)
	}

	return page, nil
}
