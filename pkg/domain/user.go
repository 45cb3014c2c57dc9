package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID form of the id.
func (id UserID) String() string { return uuid.UUID(id).String() }

// Role is the marketplace role of a user.
type Role string

const (
	// RoleAdmin operates the admin panel.
	RoleAdmin Role = "admin"
	// RolePublisher lists backlink placements on their websites.
	RolePublisher Role = "publisher"
	// RoleAdvertiser purchases backlink placements.
	RoleAdvertiser Role = "advertiser"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePublisher, RoleAdvertiser:
		return true
	}

	return false
}

// UserStatus tells whether a user may use the platform.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// Valid reports whether s is a known user status.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// User is a marketplace account. Balance is the spendable credit of the user
// and is only mutated through ledger postings.
type User struct {
	ID           UserID
	Email        string
	FullName     string
	Role         Role
	Status       UserStatus
	Balance      decimal.Decimal
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the user is allowed to transact.
func (u *User) IsActive() bool { return u.Status == UserStatusActive }
