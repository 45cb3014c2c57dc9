package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return &id, nil
}

func queryUserID(r *http.Request, name string) (*domain.UserID, error) {
	id, err := queryUUID(r, name)
	if err != nil || id == nil {
		return nil, err
	}
	userID := domain.UserID(*id)

	return &userID, nil
}

func queryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s, expected RFC3339 time", name)
	}

	return t, nil
}

// cursor parses the limit and cursor query parameters. The cursor is the
// nextCursor token of the previous page.
func (h *Handler) cursor(r *http.Request) (storage.Cursor, error) {
	c := storage.Cursor{Limit: DefaultLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || limit == 0 {
			return c, serrors.With(serrors.ErrBadRequest, "invalid limit")
		}
		c.Limit = min(uint(limit), h.options.MaxPageSize)
	}

	if raw := r.URL.Query().Get("cursor"); raw != "" {
		var after storage.Position
		if err := after.UnmarshalText([]byte(raw)); err != nil {
			return c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		c.After = &after
	}

	return c, nil
}
