package accounts_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"backma/internal/accounts"
	"backma/pkg/auth"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"
	mockstorage "backma/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAccounts(t *testing.T) (*mockstorage.MockStorage, accounts.Accounts, *auth.Verifier) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	signer, err := auth.NewSigner(string(privPEM), "backma", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(string(pubPEM), "backma")
	require.NoError(t, err)

	st := mockstorage.NewMockStorage(gomock.NewController(t))

	return st, accounts.New(st, signer, accounts.Options{BcryptCost: bcrypt.MinCost}), verifier
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestAccounts_Login(t *testing.T) {
	st, svc, verifier := newAccounts(t)
	user := &domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        "pub@example.com",
		Role:         domain.RolePublisher,
		Status:       domain.UserStatusActive,
		PasswordHash: hashed(t, "correct horse"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), "pub@example.com").Return(user, nil).Times(3)

	session, err := svc.Login(context.Background(), " Pub@Example.com ", "correct horse")
	require.NoError(t, err)
	actor, err := verifier.Verify(session.Token)
	require.NoError(t, err)
	require.Equal(t, domain.Actor{ID: user.ID, Role: domain.RolePublisher}, actor)

	_, err = svc.Login(context.Background(), "pub@example.com", "wrong password")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	user.Status = domain.UserStatusSuspended
	_, err = svc.Login(context.Background(), "pub@example.com", "correct horse")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestAccounts_Login_UnknownEmail(t *testing.T) {
	st, svc, _ := newAccounts(t)

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "not an email", "whatever1")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAccounts_CreateUser(t *testing.T) {
	st, svc, _ := newAccounts(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Equal(t, "admin@example.com", u.Email)
			require.Equal(t, domain.UserStatusActive, u.Status)
			require.True(t, u.Balance.IsZero())
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
			u.ID = domain.UserID(uuid.New())

			return &u, nil
		})
	user, err := svc.CreateUser(context.Background(), accounts.NewUser{
		Email:    "Admin@Example.com",
		FullName: " Site Admin ",
		Role:     domain.RoleAdmin,
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Equal(t, "Site Admin", user.FullName)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrConflict, "email already registered"))
	_, err = svc.CreateUser(context.Background(), accounts.NewUser{
		Email:    "admin@example.com",
		Role:     domain.RoleAdmin,
		Password: "s3cret-pass",
	})
	require.ErrorIs(t, err, serrors.ErrConflict)

	for _, bad := range []accounts.NewUser{
		{Email: "nope", Role: domain.RoleAdmin, Password: "s3cret-pass"},
		{Email: "a@example.com", Role: "root", Password: "s3cret-pass"},
		{Email: "a@example.com", Role: domain.RoleAdmin, Password: "short"},
	} {
		_, err := svc.CreateUser(context.Background(), bad)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestAccounts_Register_RefusesAdmins(t *testing.T) {
	_, svc, _ := newAccounts(t)

	_, err := svc.Register(context.Background(), accounts.NewUser{
		Email:    "sneaky@example.com",
		Role:     domain.RoleAdmin,
		Password: "s3cret-pass",
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAccounts_UpdateUser(t *testing.T) {
	st, svc, _ := newAccounts(t)
	admin := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}
	id := domain.UserID(uuid.New())
	suspended := domain.UserStatusSuspended

	_, err := svc.UpdateUser(context.Background(), domain.Actor{ID: id, Role: domain.RolePublisher}, id,
		accounts.UserChanges{Status: &suspended})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = svc.UpdateUser(context.Background(), admin, admin.ID, accounts.UserChanges{Status: &suspended})
	require.ErrorIs(t, err, serrors.ErrConflict)

	st.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{Status: &suspended}).
		Return(&domain.User{ID: id, Status: suspended}, nil)
	user, err := svc.UpdateUser(context.Background(), admin, id, accounts.UserChanges{Status: &suspended})
	require.NoError(t, err)
	require.Equal(t, suspended, user.Status)

	st.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).Return(nil, nil)
	_, err = svc.UpdateUser(context.Background(), admin, id, accounts.UserChanges{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAccounts_ReadsAreScoped(t *testing.T) {
	st, svc, _ := newAccounts(t)
	self := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdvertiser}

	st.EXPECT().UserByID(gomock.Any(), self.ID).Return(&domain.User{ID: self.ID}, nil)
	_, err := svc.User(context.Background(), self, self.ID)
	require.NoError(t, err)

	_, err = svc.User(context.Background(), self, domain.UserID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = svc.Users(context.Background(), self, storage.UserFilter{})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = svc.Overview(context.Background(), self)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	admin := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}
	st.EXPECT().Overview(gomock.Any()).Return(&domain.Overview{PendingWebsites: 3}, nil)
	overview, err := svc.Overview(context.Background(), admin)
	require.NoError(t, err)
	require.EqualValues(t, 3, overview.PendingWebsites)
}
