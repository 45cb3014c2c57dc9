package httpmail_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backma/pkg/mailer"
	"backma/pkg/mailer/httpmail"
	"backma/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *httpmail.Client {
	return httpmail.New(&http.Client{Transport: fn}, "https://mail.example.com/", "test-key", "no-reply@back.ma")
}

func rateLimitHeaders(limit, remaining string, resetAt time.Time) http.Header {
	h := http.Header{}
	h.Set("X-Rate-Limit-Limit", limit)
	h.Set("X-Rate-Limit-Remaining", remaining)
	h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

	return h
}

func Test_parseRateLimit(t *testing.T) {
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 678900000, time.UTC)
	rl, err := httpmail.ParseRateLimit(rateLimitHeaders("120", "80", resetAt))
	require.NoError(t, err)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
	require.True(t, rl.Known())

	rl, err = httpmail.ParseRateLimit(http.Header{})
	require.NoError(t, err)
	require.False(t, rl.Known())

	h := http.Header{}
	h.Set("X-Rate-Limit-Reset", "not-a-time")
	_, err = httpmail.ParseRateLimit(h)
	require.Error(t, err)
}

func TestClient_Send_success(t *testing.T) {
	resetAt := time.Now().Add(time.Hour).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "mail.example.com", r.URL.Host)
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			Tags    []string `json:"tags"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "no-reply@back.ma", body.From)
		require.Equal(t, []string{"pub@example.com"}, body.To)
		require.Equal(t, "New order", body.Subject)
		require.Equal(t, []string{"purchase_status"}, body.Tags)

		return &http.Response{
			StatusCode: http.StatusAccepted,
			Header:     rateLimitHeaders("100", "99", resetAt),
			Body:       io.NopCloser(strings.NewReader(`{"id":"m-1"}`)),
		}, nil
	})

	rl, err := c.Send(context.Background(), mailer.Message{
		To:       "pub@example.com",
		Subject:  "New order",
		Text:     "You have a new order",
		Template: "purchase_status",
	})
	require.NoError(t, err)
	require.Equal(t, 100, rl.Limit)
	require.Equal(t, 99, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Send_rateLimited429(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     rateLimitHeaders("100", "0", resetAt),
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	rl, err := c.Send(context.Background(), mailer.Message{To: "a@example.com"})
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
	require.Equal(t, 0, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Send_refused4xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnprocessableEntity,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("invalid recipient")),
		}, nil
	})

	_, err := c.Send(context.Background(), mailer.Message{To: "nope"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "invalid recipient")
}

func TestClient_Send_non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rate-Limit-Limit", "10")
		w.Header().Set("X-Rate-Limit-Remaining", "9")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream bad"))
	}))
	defer srv.Close()

	c := httpmail.New(srv.Client(), srv.URL, "k", "no-reply@back.ma")
	rl, err := c.Send(context.Background(), mailer.Message{To: "a@example.com"})
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
	require.Contains(t, err.Error(), "upstream bad")
	require.Equal(t, 9, rl.Remaining)
}
