// Package auth issues and verifies the RS256 access tokens of the API. The
// subject is the user id and the role travels in a dedicated claim.
package auth

import (
	"errors"
	"fmt"
	"time"

	"backma/pkg/domain"
	"backma/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the claims of an access token.
type Claims struct {
	jwt.RegisteredClaims

	Role domain.Role `json:"role"`
}

// Signer issues access tokens.
type Signer struct {
	key    any
	issuer string
	ttl    time.Duration
}

// NewSigner parses the PEM encoded RSA private key.
func NewSigner(privateKeyPEM, issuer string, ttl time.Duration) (*Signer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Signer{key: key, issuer: issuer, ttl: ttl}, nil
}

// Sign returns a token for actor valid for the signer's TTL, or for ttl when it is positive.
func (s *Signer) Sign(actor domain.Actor, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := time.Now()
	expiresAt := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   actor.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role: actor.Role,
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, expiresAt, nil
}

// Verifier validates access tokens.
type Verifier struct {
	key    any
	issuer string
}

// NewVerifier parses the PEM encoded RSA public key. An empty issuer
// disables the issuer check.
func NewVerifier(publicKeyPEM, issuer string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{key: key, issuer: issuer}, nil
}

// Verify checks the signature and lifetime of token and returns its actor.
// Every failure is a serrors.ErrUnauthorized error.
func (v *Verifier) Verify(token string) (domain.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, opts...); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Actor{}, serrors.Wrap(serrors.ErrUnauthorized, err, "token expired")
		}

		return domain.Actor{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	if !claims.Role.Valid() {
		return domain.Actor{}, serrors.With(serrors.ErrUnauthorized, "invalid token role")
	}

	return domain.Actor{ID: domain.UserID(id), Role: claims.Role}, nil
}
