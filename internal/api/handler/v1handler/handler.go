// Package v1handler implements the JSON handlers of the /v1 API on top of the
// marketplace services.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"backma/internal/accounts"
	"backma/internal/catalog"
	"backma/internal/config"
	"backma/internal/content"
	"backma/internal/disputes"
	"backma/internal/funding"
	"backma/internal/ledger"
	"backma/internal/moderation"
	"backma/internal/orders"
	"backma/pkg/controller"
	"backma/pkg/logger"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	maxBodyBytes = 1 << 20
)

// Exporter streams CSV exports.
type Exporter interface {
	Transactions(ctx context.Context, w io.Writer, filter storage.TransactionFilter) (int, error)
	Purchases(ctx context.Context, w io.Writer, filter storage.PurchaseFilter) (int, error)
	Users(ctx context.Context, w io.Writer, filter storage.UserFilter) (int, error)
}

type Deps struct {
	Accounts   accounts.Accounts
	Orders     orders.Orders
	Disputes   disputes.Disputes
	Funding    funding.Funding
	Catalog    catalog.Catalog
	Moderation moderation.Moderation
	Content    content.Content
	Ledger     ledger.Ledger
	Exporter   Exporter
}

// Options tune request handling.
type Options struct {
	// MaxPageSize caps the limit query parameter of listing endpoints.
	MaxPageSize uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxPageSize: cfg.Marketplace.MaxPageSize}
}

type Handler struct {
	Deps

	options  Options
	validate *validator.Validate
}

func New(deps Deps, options Options) *Handler {
	if options.MaxPageSize == 0 {
		options.MaxPageSize = 100
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{Deps: deps, options: options, validate: validate}
}

// defaultMessages are returned for semantic errors that carry no message.
var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:            "resource not found",
	serrors.ErrUnauthorized:        "unauthorized",
	serrors.ErrForbidden:           "forbidden",
	serrors.ErrBadRequest:          "bad request",
	serrors.ErrConflict:            "conflict",
	serrors.ErrInsufficientBalance: "insufficient balance",
	serrors.ErrInvalidTransition:   "invalid status transition",
	serrors.ErrRateLimited:         "too many requests",
	serrors.ErrTimeout:             "request timed out",
	serrors.ErrUnavailable:         "service unavailable",
}

func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrConflict, serrors.ErrInvalidTransition:
		return http.StatusConflict
	case serrors.ErrInsufficientBalance:
		return http.StatusUnprocessableEntity
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// NewError maps err to a status code and response body. Errors without a
// semantic kind, and internal ones, are logged and hidden behind a generic
// message.
func (h *Handler) NewError(ctx context.Context, err error) (int, controller.ErrorBody) {
	kind := serrors.KindOf(err)
	status := statusOf(kind)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return status, controller.ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = defaultMessages[kind]
	}

	return status, controller.ErrorBody{Code: kind.Error(), Message: msg}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := h.NewError(r.Context(), err)
	controller.WriteError(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into dst and validates its struct tags. On failure
// the error response is written and false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	return h.decodeBody(w, r, dst, false)
}

// decodeOptional is decode for endpoints whose body may be omitted.
func (h *Handler) decodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	return h.decodeBody(w, r, dst, true)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && (!optional || !errors.Is(err, io.EOF)) {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest,
				"invalid %s: failed %s", verrs[0].Field(), describeTag(verrs[0])))

			return false
		}
		h.writeError(w, r, fmt.Errorf("could not validate request: %w", err))

		return false
	}

	return true
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}
