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
	balanceRequestsTable = "balance_requests"
)

func (p *PgSQL) StoreBalanceRequest(ctx context.Context,
	request domain.BalanceRequest) (*domain.BalanceRequest, error) {
	var row PgBalanceRequest
	row.FromDomain(request)

	var result PgBalanceRequest
	if _, err := p.Builder.Insert(balanceRequestsTable).
		Rows(row).
		Returning(&PgBalanceRequest{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store balance request into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) BalanceRequestByID(ctx context.Context,
	id domain.BalanceRequestID) (*domain.BalanceRequest, error) {
	var row PgBalanceRequest
	found, err := p.Builder.From(balanceRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch balance request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LockBalanceRequest(ctx context.Context,
	id domain.BalanceRequestID) (*domain.BalanceRequest, error) {
	var row PgBalanceRequest
	found, err := p.lockByID(ctx, balanceRequestsTable, uuid.UUID(id), &row)
	if err != nil || !found {
		return nil, err
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ProcessBalanceRequest(ctx context.Context,
	id domain.BalanceRequestID,
	decision storage.BalanceRequestDecision) (*domain.BalanceRequest, error) {
	var row PgBalanceRequest
	found, err := p.Builder.Update(balanceRequestsTable).
		Set(goqu.Record{
			"status":       string(decision.Status),
			"commission":   decision.Commission,
			"admin_note":   nullIfEmpty(decision.AdminNote),
			"processed_by": uuid.UUID(decision.ProcessedBy),
			"processed_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgBalanceRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not process balance request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BalanceRequests(ctx context.Context,
	filter storage.BalanceRequestFilter) (storage.Page[domain.BalanceRequest], error) {
	var w []goqu.Expression
	if filter.UserID != nil {
		w = append(w, goqu.I("user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("type").Eq(string(filter.Type)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(balanceRequestsTable).Where(w...), filter.Cursor,
		func(r *PgBalanceRequest) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgBalanceRequest).ToDomain)
	if err != nil {
		return storage.Page[domain.BalanceRequest]{}, fmt.Errorf("could not fetch balance requests from pg: %w", err)
	}

	return page, nil
}
