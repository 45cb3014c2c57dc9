package storage

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Position is the place of a row in a newest-first listing. Rows written by
// one database transaction share created_at, so the id breaks the tie.
type Position struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// MarshalText encodes p as an opaque URL safe token.
func (p Position) MarshalText() ([]byte, error) {
	raw := p.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + p.ID.String()

	return []byte(base64.RawURLEncoding.EncodeToString([]byte(raw))), nil
}

// UnmarshalText decodes a token produced by MarshalText.
func (p *Position) UnmarshalText(text []byte) error {
	raw, err := base64.RawURLEncoding.DecodeString(string(text))
	if err != nil {
		return errors.New("malformed cursor")
	}
	at, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return errors.New("malformed cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return errors.New("malformed cursor time")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return errors.New("malformed cursor id")
	}
	*p = Position{CreatedAt: createdAt, ID: parsed}

	return nil
}

func (p Position) String() string {
	text, _ := p.MarshalText()

	return string(text)
}

// Cursor selects one page of a listing ordered by creation time then id,
// newest first.
type Cursor struct {
	// After restricts the page to rows strictly older than this position.
	// Nil starts from the newest row.
	After *Position
	// Limit is the maximum number of rows of the page.
	Limit uint
}

// Page groups one page of rows together with an optional NextCursor used
// for pagination.
type Page[T any] struct {
	// Items contains the current page of records.
	Items []T
	// NextCursor is the position of the last item, to be passed as the After
	// of the next request. It is nil when there is no next page.
	NextCursor *Position
}
