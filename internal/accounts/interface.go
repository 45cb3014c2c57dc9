package accounts

import (
	"context"
	"time"

	"backma/pkg/domain"
	"backma/pkg/storage"
)

// NewUser holds the fields of an account to create.
type NewUser struct {
	Email    string
	FullName string
	Role     domain.Role
	Password string
}

// UserChanges describes optional account fields an admin may change.
type UserChanges struct {
	FullName *string
	Role     *domain.Role
	Status   *domain.UserStatus
	Password *string
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	// Login verifies the credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Register creates a publisher or advertiser account.
	Register(ctx context.Context, user NewUser) (*domain.User, error)
	// CreateUser creates an account of any role. Callers gate it to admins.
	CreateUser(ctx context.Context, user NewUser) (*domain.User, error)
	User(ctx context.Context, actor domain.Actor, id domain.UserID) (*domain.User, error)
	Users(ctx context.Context, actor domain.Actor, filter storage.UserFilter) (storage.Page[domain.User], error)
	UpdateUser(ctx context.Context, actor domain.Actor, id domain.UserID, changes UserChanges) (*domain.User, error)
	// Overview returns the aggregates of the admin dashboard.
	Overview(ctx context.Context, actor domain.Actor) (*domain.Overview, error)
}
