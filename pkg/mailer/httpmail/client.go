// Package httpmail provides a mailer.Client backed by a JSON HTTP email API.
// The provider is expected to accept POST {baseURL}/v1/messages with a bearer
// API key and to report its quota through X-Rate-Limit-* headers.
package httpmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backma/pkg/mailer"
	"backma/pkg/serrors"
)

// Client talks to the provider REST API and fulfills the mailer.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
}

// ParseRateLimit extracts rate-limit information from the HTTP response
// headers. Missing headers yield a zero status; a malformed reset time is an
// error.
func ParseRateLimit(h http.Header) (mailer.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	status := mailer.RateLimitStatus{
		Limit:     atoi(h.Get("X-Rate-Limit-Limit")),
		Remaining: atoi(h.Get("X-Rate-Limit-Remaining")),
	}

	resetStr := h.Get("X-Rate-Limit-Reset")
	if resetStr == "" {
		return status, nil
	}
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return mailer.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}
	status.ResetAt = resetAt

	return status, nil
}

// Send posts msg to the provider. It returns the parsed rate-limit status
// along with any delivery error.
func (c *Client) Send(ctx context.Context, msg mailer.Message) (mailer.RateLimitStatus, error) {
	type sendReq struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		Text    string   `json:"text"`
		Tags    []string `json:"tags,omitempty"`
	}
	body := sendReq{From: c.from, To: []string{msg.To}, Subject: msg.Subject, Text: msg.Text}
	if msg.Template != "" {
		body.Tags = []string{msg.Template}
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return mailer.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/messages",
		bytes.NewReader(bodyBytes))
	if err != nil {
		return mailer.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mailer.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return rl, fmt.Errorf("could not read response body: %w", err)
	}
	text := strings.TrimSpace(string(b))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", text)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return rl, serrors.With(serrors.ErrBadRequest, "message refused with %d: %s", resp.StatusCode, text)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return rl, fmt.Errorf("send failed with %d: %s", resp.StatusCode, text)
	}

	return rl, nil
}

// Ensure Client conforms to the mailer.Client interface at compile time.
var _ mailer.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, provider base
// URL, API key and sender address.
func New(httpClient *http.Client, baseURL, apiKey, from string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
	}
}
