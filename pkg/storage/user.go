package storage

import (
	"context"

	"backma/pkg/domain"

	"github.com/shopspring/decimal"
)

// UserFilter narrows a user listing. Empty fields match everything.
type UserFilter struct {
	Role   domain.Role
	Status domain.UserStatus
	// Search matches a substring of the email or the full name, case-insensitively.
	Search string
	Cursor
}

// UserUpdates describes optional user fields to change. Only non-nil fields
// are written.
type UserUpdates struct {
	FullName     *string
	Role         *domain.Role
	Status       *domain.UserStatus
	PasswordHash *string
}

// UserStorage defines persistence of user accounts and their balances.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. A taken email
	// yields a serrors.ErrConflict error.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail looks a user up by lowercased email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// LockUser reads the user with SELECT ... FOR UPDATE so its balance can be
	// changed safely. It must be called inside a transaction and returns nil
	// when the user does not exist.
	LockUser(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UpdateUser applies updates and returns the updated user, or nil when not found.
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// SetUserBalance overwrites the balance. Callers hold the row lock.
	SetUserBalance(ctx context.Context, id domain.UserID, balance decimal.Decimal) error
	// Users returns a page of users, newest first.
	Users(ctx context.Context, filter UserFilter) (Page[domain.User], error)
}
