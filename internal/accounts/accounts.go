// Package accounts manages user accounts, password login and the admin
// dashboard aggregates.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"backma/pkg/auth"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// Options configure password hashing.
type Options struct {
	// BcryptCost is the bcrypt work factor. Zero uses bcrypt.DefaultCost.
	BcryptCost int
}

type accounts struct {
	storage storage.Storage
	signer  *auth.Signer
	options Options
}

func (a *accounts) hash(password string) (string, error) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return "", serrors.With(serrors.ErrBadRequest,
			"password must be between %d and %d characters", minPasswordLength, maxPasswordLength)
	}

	cost := a.options.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", serrors.With(serrors.ErrBadRequest, "invalid email")
	}

	return email, nil
}

func (a *accounts) Login(ctx context.Context, email, password string) (*Session, error) {
	invalid := serrors.With(serrors.ErrUnauthorized, "invalid email or password")

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, invalid
	}
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, invalid
		}

		return nil, fmt.Errorf("could not verify password: %w", err)
	}
	if !user.IsActive() {
		return nil, serrors.With(serrors.ErrForbidden, "account is suspended")
	}

	token, expiresAt, err := a.signer.Sign(domain.Actor{ID: user.ID, Role: user.Role}, 0)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (a *accounts) Register(ctx context.Context, user NewUser) (*domain.User, error) {
	if user.Role != domain.RolePublisher && user.Role != domain.RoleAdvertiser {
		return nil, serrors.With(serrors.ErrBadRequest, "role must be publisher or advertiser")
	}

	return a.CreateUser(ctx, user)
}

func (a *accounts) CreateUser(ctx context.Context, user NewUser) (*domain.User, error) {
	email, err := normalizeEmail(user.Email)
	if err != nil {
		return nil, err
	}
	if !user.Role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown role %q", user.Role)
	}
	hash, err := a.hash(user.Password)
	if err != nil {
		return nil, err
	}

	stored, err := a.storage.StoreUser(ctx, domain.User{
		Email:        email,
		FullName:     strings.TrimSpace(user.FullName),
		Role:         user.Role,
		Status:       domain.UserStatusActive,
		Balance:      decimal.Zero,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return stored, nil
}

func (a *accounts) User(ctx context.Context, actor domain.Actor, id domain.UserID) (*domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	user, err := a.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (a *accounts) Users(ctx context.Context,
	actor domain.Actor,
	filter storage.UserFilter) (storage.Page[domain.User], error) {
	if !actor.IsAdmin() {
		return storage.Page[domain.User]{}, serrors.With(serrors.ErrForbidden, "only admins can list users")
	}

	page, err := a.storage.Users(ctx, filter)
	if err != nil {
		return storage.Page[domain.User]{}, fmt.Errorf("could not list users: %w", err)
	}

	return page, nil
}

func (a *accounts) UpdateUser(ctx context.Context,
	actor domain.Actor,
	id domain.UserID,
	changes UserChanges) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only admins can update users")
	}
	if actor.ID == id && (changes.Role != nil || changes.Status != nil) {
		return nil, serrors.With(serrors.ErrConflict, "admins cannot change their own role or status")
	}
	if changes.Role != nil && !changes.Role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown role %q", *changes.Role)
	}
	if changes.Status != nil && !changes.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", *changes.Status)
	}

	updates := storage.UserUpdates{Role: changes.Role, Status: changes.Status}
	if changes.FullName != nil {
		name := strings.TrimSpace(*changes.FullName)
		updates.FullName = &name
	}
	if changes.Password != nil {
		hash, err := a.hash(*changes.Password)
		if err != nil {
			return nil, err
		}
		updates.PasswordHash = &hash
	}

	user, err := a.storage.UpdateUser(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (a *accounts) Overview(ctx context.Context, actor domain.Actor) (*domain.Overview, error) {
	if !actor.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only admins can see the overview")
	}

	overview, err := a.storage.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not compute overview: %w", err)
	}

	return overview, nil
}

// New creates an Accounts service. signer may be nil when Login is never called.
func New(storage storage.Storage, signer *auth.Signer, options Options) Accounts {
	return &accounts{storage: storage, signer: signer, options: options}
}
