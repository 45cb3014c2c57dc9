package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backma/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultPageSize = 20

	uniqueViolationCode = "23505"
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// inTx reports whether p is bound to a transaction.
func (p *PgSQL) inTx() bool {
	_, ok := p.DB.(*sql.Tx)

	return ok
}

// lockByID reads the row identified by id with SELECT ... FOR UPDATE into
// dst. It refuses to run outside a transaction because the lock would be
// released immediately.
func (p *PgSQL) lockByID(ctx context.Context, table string, id any, dst any) (bool, error) {
	if !p.inTx() {
		return false, storage.ErrNotInTx
	}

	found, err := p.Builder.From(table).
		Where(goqu.I("id").Eq(id)).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, dst)
	if err != nil {
		return false, fmt.Errorf("could not lock %s row: %w", table, err)
	}

	return found, nil
}

// fetchPage runs ds as one page of a newest-first listing keyed by
// (created_at, id). It fetches one row more than the limit to determine
// whether a next page exists.
func fetchPage[R any, D any](ctx context.Context,
	ds *goqu.SelectDataset,
	cursor storage.Cursor,
	position func(*R) storage.Position,
	toDomain func(*R) *D) (storage.Page[D], error) {
	if cursor.After != nil {
		ds = ds.Where(goqu.L("(?, ?) < (?, ?)",
			goqu.I("created_at"), goqu.I("id"), cursor.After.CreatedAt, cursor.After.ID))
	}
	limit := cursor.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	var rows []R
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[D]{}, fmt.Errorf("could not fetch page: %w", err)
	}

	var nextCursor *storage.Position
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		next := position(&rows[len(rows)-1])
		nextCursor = &next
	}

	items := make([]D, 0, len(rows))
	for i := range rows {
		items = append(items, *toDomain(&rows[i]))
	}

	return storage.Page[D]{Items: items, NextCursor: nextCursor}, nil
}

// setIf adds value to rec under column when value is non-nil.
func setIf[T any](rec goqu.Record, column string, value *T) {
	if value != nil {
		rec[column] = *value
	}
}

// nullIfEmpty maps an empty string to SQL NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}

	return s
}
