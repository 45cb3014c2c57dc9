// Package notify enqueues transactional emails as River jobs and renders
// them from embedded text templates. Jobs are inserted through the storage
// handle of the caller, so an email enqueued inside a transaction is only
// delivered once that transaction commits.
package notify

import (
	"context"
	"fmt"
	"maps"

	"backma/internal/config"
	"backma/pkg/domain"
	"backma/pkg/storage"
)

// Options configure how email jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of delivery attempts per email.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxAttempts: cfg.Worker.MaxAttempts}
}

// Notifier enqueues email jobs.
type Notifier struct {
	options Options
}

// New creates a Notifier configured with the given options.
func New(options Options) *Notifier {
	return &Notifier{options: options}
}

// Email enqueues an email rendered from tmpl to the given address. An empty
// address is ignored.
func (n *Notifier) Email(ctx context.Context,
	jobs storage.JobStorage,
	to string,
	tmpl Template,
	data map[string]string) error {
	if to == "" {
		return nil
	}

	if _, err := jobs.AddJob(ctx, EmailArgs{
		To:          to,
		Template:    tmpl,
		Data:        data,
		maxAttempts: n.options.MaxAttempts,
	}, nil); err != nil {
		return fmt.Errorf("could not enqueue %s email: %w", tmpl, err)
	}

	return nil
}

// EmailUser looks the user up through s and enqueues an email to them. The
// user's name is added to data as "Name". Unknown users are skipped.
func (n *Notifier) EmailUser(ctx context.Context,
	s storage.AllStorage,
	userID domain.UserID,
	tmpl Template,
	data map[string]string) error {
	user, err := s.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not get email recipient: %w", err)
	}
	if user == nil {
		return nil
	}

	withName := make(map[string]string, len(data)+1)
	maps.Copy(withName, data)
	withName["Name"] = user.FullName

	return n.Email(ctx, s, user.Email, tmpl, withName)
}
