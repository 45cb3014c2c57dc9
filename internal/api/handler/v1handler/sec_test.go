package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backma/internal/api/handler/v1handler"
	"backma/pkg/auth"
	"backma/pkg/domain"
	"backma/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func privatePEM(priv *rsa.PrivateKey) string {
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	}))
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signToken(tb testing.TB, priv *rsa.PrivateKey, actor domain.Actor) string {
	tb.Helper()
	signer, err := auth.NewSigner(privatePEM(priv), "", time.Hour)
	require.NoError(tb, err)
	token, _, err := signer.Sign(actor, 0)
	require.NoError(tb, err)

	return token
}

func signClaimsRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, role domain.Role, issuedAt, exp time.Time) string {
	tb.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(exp),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a key"})
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	actor := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RolePublisher}
	ctx, err := sh.HandleBearerAuth(context.Background(), signToken(t, priv, actor))
	require.NoError(t, err)

	got, ok := v1handler.ActorFrom(ctx)
	require.True(t, ok, "expected actor in context")
	require.Equal(t, actor, got)
}

func TestHandleBearerAuth_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	privOther, _ := genRSAKeys(t)
	token := signToken(t, privOther, domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin})

	_, err := sh.HandleBearerAuth(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signClaimsRS256(t, priv, uuid.NewString(), domain.RoleAdvertiser, now.Add(-2*time.Hour), now.Add(-time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_InvalidSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signClaimsRS256(t, priv, "not-a-uuid", domain.RoleAdvertiser, now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_UnknownRole(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signClaimsRS256(t, priv, uuid.NewString(), domain.Role("root"), now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role: domain.RoleAdmin,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = sh.HandleBearerAuth(context.Background(), signed)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

// echoActor replies 200 with the role of the authenticated actor, or "anonymous".
var echoActor = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { //nolint: gochecknoglobals
	role := "anonymous"
	if actor, ok := v1handler.ActorFrom(r.Context()); ok {
		role = string(actor.Role)
	}
	_, _ = w.Write([]byte(role))
})

func serve(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestSecHandler_Middlewares(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	adminToken := signToken(t, priv, domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin})
	publisherToken := signToken(t, priv, domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RolePublisher})

	tests := []struct {
		name       string
		handler    http.Handler
		token      string
		wantStatus int
		wantBody   string
	}{
		{"required without token", sh.Required(echoActor), "", http.StatusUnauthorized, "missing bearer token"},
		{"required with token", sh.Required(echoActor), publisherToken, http.StatusOK, "publisher"},
		{"required with garbage", sh.Required(echoActor), "garbage", http.StatusUnauthorized, "invalid token"},
		{"optional without token", sh.Optional(echoActor), "", http.StatusOK, "anonymous"},
		{"optional with token", sh.Optional(echoActor), adminToken, http.StatusOK, "admin"},
		{"optional with garbage", sh.Optional(echoActor), "garbage", http.StatusUnauthorized, "invalid token"},
		{"admin without token", sh.Admin(echoActor), "", http.StatusUnauthorized, "missing bearer token"},
		{"admin as publisher", sh.Admin(echoActor), publisherToken, http.StatusForbidden, "admin role required"},
		{"admin as admin", sh.Admin(echoActor), adminToken, http.StatusOK, "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.handler, tt.token)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestSecHandler_NonBearerScheme(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	sh.Required(echoActor).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
