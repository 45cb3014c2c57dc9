package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"backma/pkg/auth"
	"backma/pkg/domain"
	"backma/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns PEM encoded private and public keys.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(privPEM), string(pubPEM)
}

func TestSignAndVerify(t *testing.T) {
	_, privPEM, pubPEM := genRSAKeys(t)
	signer, err := auth.NewSigner(privPEM, "backma", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(pubPEM, "backma")
	require.NoError(t, err)

	actor := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RolePublisher}
	token, expiresAt, err := signer.Sign(actor, 0)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, actor, got)
}

func TestVerify_Rejects(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	verifier, err := auth.NewVerifier(pubPEM, "backma")
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return signed
	}
	valid := func() auth.Claims {
		now := time.Now()

		return auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "backma",
				Subject:   uuid.NewString(),
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			Role: domain.RoleAdvertiser,
		}
	}

	otherPriv, _, _ := genRSAKeys(t)
	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	badSubject := valid()
	badSubject.Subject = "not-a-uuid"
	badRole := valid()
	badRole.Role = "root"
	badIssuer := valid()
	badIssuer.Issuer = "someone-else"
	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	tokens := map[string]string{
		"other key":   sign(valid(), jwt.SigningMethodRS256, otherPriv),
		"expired":     sign(expired, jwt.SigningMethodRS256, priv),
		"bad subject": sign(badSubject, jwt.SigningMethodRS256, priv),
		"bad role":    sign(badRole, jwt.SigningMethodRS256, priv),
		"bad issuer":  sign(badIssuer, jwt.SigningMethodRS256, priv),
		"no expiry":   sign(noExpiry, jwt.SigningMethodRS256, priv),
		"hs256":       sign(valid(), jwt.SigningMethodHS256, []byte("secret")),
		"garbage":     "not.a.token",
	}
	for name, token := range tokens {
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized, name)
	}

	_, err = auth.NewSigner("not a key", "", time.Hour)
	require.Error(t, err)
	_, err = auth.NewVerifier("not a key", "")
	require.Error(t, err)
}
