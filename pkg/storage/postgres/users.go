package postgres

import (
	"context"
	"fmt"
	"strings"

	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)
	row.Email = strings.ToLower(row.Email)

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email already registered")
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) userBy(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("email").Eq(strings.ToLower(email)))
}

func (p *PgSQL) LockUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.lockByID(ctx, usersTable, uuid.UUID(id), &row)
	if err != nil || !found {
		return nil, err
	}

	return row.ToDomain(), nil
}

// UpdateUser sets the provided fields and updated_at, returning the updated row.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "full_name", updates.FullName)
	setIf(rec, "role", updates.Role)
	setIf(rec, "status", updates.Status)
	setIf(rec, "password_hash", updates.PasswordHash)

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SetUserBalance(ctx context.Context, id domain.UserID, balance decimal.Decimal) error {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"balance":    balance,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set user balance in pg: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	return nil
}

// Users returns a page of users ordered by created_at DESC, id DESC.
func (p *PgSQL) Users(ctx context.Context, filter storage.UserFilter) (storage.Page[domain.User], error) {
	var w []goqu.Expression
	if filter.Role != "" {
		w = append(w, goqu.I("role").Eq(string(filter.Role)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		w = append(w, goqu.Or(
			goqu.I("email").ILike(pattern),
			goqu.I("full_name").ILike(pattern),
		))
	}

	page, err := fetchPage(ctx, p.Builder.From(usersTable).Where(w...), filter.Cursor,
		func(r *PgUser) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgUser).ToDomain)
	if err != nil {
		return storage.Page[domain.User]{}, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return page, nil
}
