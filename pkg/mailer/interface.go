// Package mailer defines the transactional email abstraction used by the
// background workers together with the provider rate-limit status they
// cooperate on.
package mailer

import (
	"context"
	"time"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// email provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Known reports whether the provider sent rate-limit information at all.
func (s RateLimitStatus) Known() bool { return s.Limit > 0 || !s.ResetAt.IsZero() }

// Message is a rendered email ready to be delivered.
type Message struct {
	To      string
	Subject string
	Text    string
	// Template names the template the message was rendered from. Providers
	// may use it as a tag.
	Template string
}

// Client delivers emails.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Client interface {
	// Send delivers msg and returns the provider's current rate-limit status.
	// A serrors.ErrRateLimited error means the provider refused the message
	// until ResetAt; a serrors.ErrBadRequest error is permanent.
	Send(ctx context.Context, msg Message) (RateLimitStatus, error)
}
