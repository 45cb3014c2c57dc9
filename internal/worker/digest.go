package worker

import (
	"context"
	"fmt"

	"backma/internal/notify"
	"backma/pkg/logger"
	"backma/pkg/storage"

	"github.com/riverqueue/river"
)

// DigestWorker emails the admin address the pending-work counters of the
// dashboard. The email itself is delivered by EmailWorker.
type DigestWorker struct {
	river.WorkerDefaults[notify.DigestArgs]

	storage    storage.Storage
	notifier   *notify.Notifier
	adminEmail string
}

// NewDigestWorker constructs a DigestWorker sending to adminEmail.
func NewDigestWorker(s storage.Storage, notifier *notify.Notifier, adminEmail string) *DigestWorker {
	return &DigestWorker{storage: s, notifier: notifier, adminEmail: adminEmail}
}

func (d *DigestWorker) Work(ctx context.Context, _ *river.Job[notify.DigestArgs]) error {
	if d.adminEmail == "" {
		logger.Warn(ctx, "no admin email configured, skipping digest")

		return nil
	}

	overview, err := d.storage.Overview(ctx)
	if err != nil {
		return fmt.Errorf("could not compute overview: %w", err)
	}

	return d.notifier.Email(ctx, d.storage, d.adminEmail, notify.TemplateAdminDigest, notify.DigestData(overview))
}
