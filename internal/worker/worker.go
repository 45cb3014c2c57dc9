// Package worker runs the River client that executes background jobs:
// transactional email delivery and the periodic admin digest.
package worker

import (
	"context"
	"fmt"

	"backma/internal/config"
	"backma/internal/notify"
	"backma/pkg/logger"
	"backma/pkg/mailer"
	"backma/pkg/metrics"
	"backma/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
)

const defaultMaxWorkers = 100

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of concurrent jobs on the default queue.
	MaxWorkers int
	// DigestSchedule is a standard five field cron expression. Empty disables the digest.
	DigestSchedule string
	// AdminEmail receives the digest.
	AdminEmail string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:     cfg.Worker.MaxWorkers,
		DigestSchedule: cfg.Worker.DigestSchedule,
		AdminEmail:     cfg.Mailer.AdminEmail,
	}
}

type Deps struct {
	Storage  storage.Storage
	Notifier *notify.Notifier
	Mailer   mailer.Client
	Recorder *metrics.Recorder
}

// PeriodicJobs returns the periodic jobs for opts.
func PeriodicJobs(opts Options) ([]*river.PeriodicJob, error) {
	if opts.DigestSchedule == "" || opts.AdminEmail == "" {
		return nil, nil
	}

	schedule, err := cron.ParseStandard(opts.DigestSchedule)
	if err != nil {
		return nil, fmt.Errorf("could not parse digest schedule: %w", err)
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(schedule, func() (river.JobArgs, *river.InsertOpts) {
			return notify.DigestArgs{}, nil
		}, nil),
	}, nil
}

// NewClient creates a River client with every worker registered.
func NewClient(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEmailWorker(deps.Mailer, deps.Recorder))
	river.AddWorker(workers, NewDigestWorker(deps.Storage, deps.Notifier, opts.AdminEmail))

	periodicJobs, err := PeriodicJobs(opts)
	if err != nil {
		return nil, err
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start creates the River client and starts working jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, deps, opts)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
