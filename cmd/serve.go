package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"backma/internal/accounts"
	"backma/internal/api"
	"backma/internal/api/handler/v1handler"
	"backma/internal/catalog"
	"backma/internal/config"
	"backma/internal/content"
	"backma/internal/disputes"
	"backma/internal/export"
	"backma/internal/funding"
	"backma/internal/ledger"
	"backma/internal/moderation"
	"backma/internal/notify"
	"backma/internal/orders"
	"backma/internal/worker"
	"backma/pkg/auth"
	"backma/pkg/logger"
	"backma/pkg/mailer"
	"backma/pkg/mailer/httpmail"
	"backma/pkg/mailer/logmail"
	"backma/pkg/metrics"
	"backma/pkg/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newMailer returns the HTTP provider client, or a client that only logs
// messages when no provider is configured.
func newMailer(ctx context.Context, cfg *config.Config) mailer.Client {
	if cfg.Mailer.BaseURL == "" {
		logger.Warn(ctx, "mailer base URL is empty, emails are logged instead of sent")

		return logmail.New()
	}

	return httpmail.New(&http.Client{Timeout: cfg.Mailer.Timeout}, cfg.Mailer.BaseURL, cfg.Mailer.APIKey, cfg.Mailer.From)
}

// newRecorder exports the business counters through the default Prometheus
// registry. The returned function flushes and stops the meter provider.
func newRecorder(ctx context.Context) (*metrics.Recorder, func(ctx context.Context)) {
	provider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	recorder, err := metrics.NewRecorder(provider.Meter("backma"))
	if err != nil {
		logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
	}

	return recorder, func(ctx context.Context) {
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}
}

// newServices builds every marketplace service on top of strg.
func newServices(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, recorder *metrics.Recorder) v1handler.Deps {
	rules, err := cfg.MarketplaceRules()
	if err != nil {
		logger.Fatal(ctx, "invalid marketplace rules", zap.Error(err))
	}
	signer, err := auth.NewSigner(cfg.JWT.PrivateKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal(ctx, "could not create token signer", zap.Error(err))
	}

	notifier := notify.New(notify.NewOptions(cfg))
	ldgr := ledger.New(strg, recorder)

	return v1handler.Deps{
		Accounts: accounts.New(strg, signer, accounts.Options{}),
		Orders: orders.New(orders.Deps{
			Storage:  strg,
			Ledger:   ldgr,
			Notifier: notifier,
			Recorder: recorder,
		}, orders.NewOptions(rules)),
		Disputes: disputes.New(disputes.Deps{
			Storage:  strg,
			Ledger:   ldgr,
			Notifier: notifier,
			Recorder: recorder,
		}),
		Funding: funding.New(funding.Deps{
			Storage:  strg,
			Ledger:   ldgr,
			Notifier: notifier,
		}, funding.NewOptions(rules)),
		Catalog: catalog.New(catalog.Deps{
			Storage:  strg,
			Ledger:   ldgr,
			Notifier: notifier,
		}),
		Moderation: moderation.New(moderation.Deps{
			Storage:  strg,
			Notifier: notifier,
		}),
		Content:  content.New(strg),
		Ledger:   ldgr,
		Exporter: export.New(strg),
	}
}

func setupWorker(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	recorder *metrics.Recorder) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
		Storage:  strg,
		Notifier: notify.New(notify.NewOptions(cfg)),
		Mailer:   newMailer(ctx, cfg),
		Recorder: recorder,
	}, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started")

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			recorder, stopRecorder := newRecorder(ctx)
			riverClient, stopWorker := setupWorker(ctx, cfg, strg, recorder)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:  newServices(ctx, cfg, strg, recorder),
				River: riverClient,
				Ping:  strg.Pool.Ping,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			stopRecorder(shutdownCtx)
		},
	}

	return cmd
}
