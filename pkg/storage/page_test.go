package storage_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPosition_Token(t *testing.T) {
	in := storage.Position{CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 123456000, time.UTC), ID: uuid.New()}

	var out storage.Position
	require.NoError(t, out.UnmarshalText([]byte(in.String())))
	require.True(t, in.CreatedAt.Equal(out.CreatedAt))
	require.Equal(t, in.ID, out.ID)

	body, err := json.Marshal(struct {
		Next *storage.Position `json:"next"`
	}{&in})
	require.NoError(t, err)
	require.JSONEq(t, `{"next":"`+in.String()+`"}`, string(body))
}

func TestPosition_MalformedToken(t *testing.T) {
	enc := base64.RawURLEncoding.EncodeToString

	tests := map[string]string{
		"not base64":   "yesterday!",
		"no separator": enc([]byte("2026-03-01T12:00:00Z")),
		"bad time":     enc([]byte("yesterday|" + uuid.NewString())),
		"bad id":       enc([]byte("2026-03-01T12:00:00Z|42")),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			var p storage.Position
			require.Error(t, p.UnmarshalText([]byte(token)))
		})
	}
}
