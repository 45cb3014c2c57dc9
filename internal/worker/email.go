package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"backma/internal/notify"
	"backma/pkg/logger"
	"backma/pkg/mailer"
	"backma/pkg/metrics"
	"backma/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// trialWindow is the reset time of the synthetic budget used until the
// provider reports its real quota.
const trialWindow = 365 * 24 * time.Hour

// EmailWorker renders and delivers transactional emails. Its concurrent jobs
// share the provider's rate-limit budget: the last status reported by the
// provider is kept in lastRLStatus and a job may only send while
// Remaining minus the sends already in flight is positive. Once ResetAt has
// passed, the full Limit is available again.
//
// Until a first response arrives only a single trial send is let through. A
// provider that never reports a quota switches the worker to unthrottled
// mode, in which only MaxWorkers bounds concurrency.
//
// A later status replaces the current one when its ResetAt differs. Within
// the same window the lower Remaining wins, so concurrent responses can only
// make the view more conservative.
//
// Rate limited sends snooze the job until ResetAt. Rendering failures and
// permanent provider rejections cancel it. Other errors are retried by River.
type EmailWorker struct {
	river.WorkerDefaults[notify.EmailArgs]

	client   mailer.Client
	recorder *metrics.Recorder

	// mu guards the fields below.
	mu               sync.Mutex
	inFlightRequests int
	lastRLStatus     *mailer.RateLimitStatus
	probing          bool
	unthrottled      bool
	// requestFinishedChan wakes one goroutine blocked in reserveRL when a send
	// completes. Sends are dropped when nobody waits.
	requestFinishedChan chan struct{}
}

// NewEmailWorker constructs an EmailWorker delivering through client.
// recorder may be nil.
func NewEmailWorker(client mailer.Client, recorder *metrics.Recorder) *EmailWorker {
	return &EmailWorker{
		client:              client,
		recorder:            recorder,
		requestFinishedChan: make(chan struct{}),
	}
}

// Work renders the email of job and sends it once a rate-limit slot is free.
func (e *EmailWorker) Work(ctx context.Context, job *river.Job[notify.EmailArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("template", string(job.Args.Template)),
		zap.Int("attempt", job.Attempt))
	tmpl := string(job.Args.Template)

	msg, err := notify.Render(job.Args)
	if err != nil {
		logger.Error(ctx, "could not render email", zap.Error(err))
		e.recorder.EmailDelivered(ctx, tmpl, "cancelled")

		return river.JobCancel(err) //nolint: wrapcheck
	}

	if err := e.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	status, err := e.client.Send(ctx, msg)
	e.requestFinished(ctx, status)
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrRateLimited):
			logger.Warn(ctx, "email provider rate limited", zap.Time("resetAt", status.ResetAt))
			e.recorder.EmailDelivered(ctx, tmpl, "snoozed")

			return river.JobSnooze(max(time.Until(status.ResetAt), 0)) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrBadRequest):
			logger.Error(ctx, "email rejected by provider", zap.Error(err))
			e.recorder.EmailDelivered(ctx, tmpl, "cancelled")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error sending email", zap.Error(err))
		e.recorder.EmailDelivered(ctx, tmpl, "failed")

		return fmt.Errorf("could not send email: %w", err)
	}

	logger.Info(ctx, "email sent")
	e.recorder.EmailDelivered(ctx, tmpl, "sent")

	return nil
}

// requestFinished releases the slot taken by reserveRL, wakes a waiter and
// merges the status reported by the provider into lastRLStatus.
func (e *EmailWorker) requestFinished(ctx context.Context, status mailer.RateLimitStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.inFlightRequests = max(e.inFlightRequests-1, 0)

	select {
	case e.requestFinishedChan <- struct{}{}:
	default:
	}

	if !status.Known() || status.ResetAt.IsZero() {
		if e.probing {
			logger.Debug(ctx, "email provider reports no rate limit, sending unthrottled")
			e.probing = false
			e.unthrottled = true
			e.lastRLStatus = nil
		}

		return
	}

	adopt := e.lastRLStatus == nil || e.probing ||
		!e.lastRLStatus.ResetAt.Equal(status.ResetAt) ||
		status.Remaining < e.lastRLStatus.Remaining
	if !adopt {
		return
	}

	e.lastRLStatus = &status
	e.probing = false
	e.unthrottled = false
	logger.Debug(ctx, "received rate limit status",
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", e.inFlightRequests))
}

// reserveRL takes one unit of the rate-limit budget, blocking until one is
// available or ctx is done.
func (e *EmailWorker) reserveRL(ctx context.Context) error {
	for {
		e.mu.Lock()

		if e.unthrottled {
			e.inFlightRequests++
			e.mu.Unlock()

			return nil
		}

		if e.lastRLStatus == nil {
			e.lastRLStatus = &mailer.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(trialWindow),
			}
			e.probing = true
		}

		status := *e.lastRLStatus
		remaining := status.Remaining
		if time.Now().After(status.ResetAt) {
			remaining = status.Limit
		}

		if remaining-e.inFlightRequests > 0 {
			e.inFlightRequests++
			e.mu.Unlock()

			return nil
		}
		inFlight := e.inFlightRequests
		e.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", status.Limit),
			zap.Time("resetAt", status.ResetAt),
			zap.Int("inFlight", inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-e.requestFinishedChan:
		case <-time.After(time.Until(status.ResetAt)):
		}
	}
}
