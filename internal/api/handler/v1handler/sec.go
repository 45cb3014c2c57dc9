package v1handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"backma/internal/config"
	"backma/pkg/auth"
	"backma/pkg/domain"
	"backma/pkg/logger"
	"backma/pkg/serrors"

	"go.uber.org/zap"
)

type ctxKey string

// ActorKey is the context key under which the authenticated actor is stored.
const ActorKey ctxKey = "Actor"

// ActorFrom returns the authenticated actor stored in ctx.
func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(domain.Actor)

	return actor, ok
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying bearer tokens.
	PublicKey string
	// Issuer is required in the iss claim when set.
	Issuer string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Issuer:    cfg.JWT.Issuer,
	}
}

// SecHandler authenticates requests carrying an RS256 bearer token.
type SecHandler struct {
	verifier *auth.Verifier
	onError  func(w http.ResponseWriter, r *http.Request, err error)
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	verifier, err := auth.NewVerifier(opts.PublicKey, opts.Issuer)
	if err != nil {
		return nil, fmt.Errorf("could not create token verifier: %w", err)
	}

	h := New(Deps{}, Options{})

	return &SecHandler{verifier: verifier, onError: h.writeError}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying its actor.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	actor, err := s.verifier.Verify(token)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	return logger.WithFields(context.WithValue(ctx, ActorKey, actor),
		zap.String("userID", actor.ID.String()),
		zap.String("role", string(actor.Role))), nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	return strings.TrimSpace(token), true
}

func (s *SecHandler) authenticate(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			if required {
				s.onError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}
			next.ServeHTTP(w, r)

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			s.onError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Required rejects requests without a valid bearer token.
func (s *SecHandler) Required(next http.Handler) http.Handler {
	return s.authenticate(next, true)
}

// Optional authenticates requests carrying a bearer token and lets anonymous
// ones through. An invalid token is still rejected.
func (s *SecHandler) Optional(next http.Handler) http.Handler {
	return s.authenticate(next, false)
}

// Admin authenticates like Required and rejects actors that are not admins.
func (s *SecHandler) Admin(next http.Handler) http.Handler {
	return s.Required(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor, _ := ActorFrom(r.Context()); !actor.IsAdmin() {
			s.onError(w, r, serrors.With(serrors.ErrForbidden, "admin role required"))

			return
		}

		next.ServeHTTP(w, r)
	}))
}
