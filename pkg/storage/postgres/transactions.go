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
	transactionsTable = "credit_transactions"
)

// StoreTransaction appends a ledger row. The table's check constraint
// rejects rows whose balances do not add up.
func (p *PgSQL) StoreTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	var row PgTransaction
	row.FromDomain(tx)

	var result PgTransaction
	if _, err := p.Builder.Insert(transactionsTable).
		Rows(row).
		Returning(&PgTransaction{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store transaction into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) Transactions(ctx context.Context,
	filter storage.TransactionFilter) (storage.Page[domain.Transaction], error) {
	var w []goqu.Expression
	if filter.UserID != nil {
		w = append(w, goqu.I("user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("type").Eq(string(filter.Type)))
	}
	if !filter.From.IsZero() {
		w = append(w, goqu.I("created_at").Gte(filter.From))
	}
	if !filter.To.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.To))
	}

	page, err := fetchPage(ctx, p.Builder.From(transactionsTable).Where(w...), filter.Cursor,
		func(r *PgTransaction) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgTransaction).ToDomain)
	if err != nil {
		return storage.Page[domain.Transaction]{}, fmt.Errorf("could not fetch transactions from pg: %w", err)
	}

	return page, nil
}
