// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the Back.ma marketplace.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"backma/internal/api/handler/v1handler"
	"backma/internal/config"
	"backma/pkg/controller"
	"backma/pkg/logger"
	"backma/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	pprofPrefix   = "/debug/pprof/"
	riverUIPrefix = "/riverui"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the bearer token authentication of v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions tunes the v1 handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single v1 request. CSV exports are exempt.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the origins allowed by CORS.
	AllowedOrigins []string
	// RateLimitRPS is the sustained per-client request rate, 0 disables limiting.
	RateLimitRPS float64
	// RateLimitBurst is the per-client burst.
	RateLimitBurst int
	// RateLimitClientTTL is how long idle client buckets are kept.
	RateLimitClientTTL time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),

		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		AllowedOrigins:     cfg.HTTP.AllowedOrigins,
		RateLimitRPS:       cfg.HTTP.RateLimit.RPS,
		RateLimitBurst:     cfg.HTTP.RateLimit.Burst,
		RateLimitClientTTL: cfg.HTTP.RateLimit.ClientTTL,
	}
}

type Deps struct {
	v1handler.Deps

	// River, when set, is browsable under /riverui by admins.
	River *river.Client[pgx.Tx]
	// Ping reports whether the database is reachable. Nil skips the check.
	Ping func(ctx context.Context) error
	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) and per-route request metrics
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes with bearer token authentication
// - River UI for admins, health check and pprof endpoints
// It also wraps the router with rate limiting, CORS and logging middlewares.
// ctx bounds background work such as the River UI and rate limiter cleanup.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	router := mux.NewRouter()

	// prometheus metrics server
	httpMetrics, err := metrics.NewHTTP(deps.Registerer)
	if err != nil {
		return nil, err
	}
	router.Use(controller.WithMetrics(httpMetrics))
	router.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})).
		Methods(http.MethodGet)

	// health check
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Ping != nil {
			if err := deps.Ping(r.Context()); err != nil {
				controller.WriteError(w, http.StatusServiceUnavailable, controller.ErrorBody{
					Code:    "UNAVAILABLE",
					Message: "database unreachable",
				})

				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// v1 specs file
	router.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	}).Methods(http.MethodGet)
	// v1 api swagger playground
	router.PathPrefix("/v1/docs/").Handler(v5emb.New(
		"Back.ma Marketplace",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps, opts.HandlerOptions).
		Mount(router.PathPrefix("/v1").Subrouter(), secHandler, opts.RequestTimeout)

	// river ui
	if deps.River != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.River, nil),
			Logger:    logger.Slog(ctx),
			Prefix:    riverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui: %w", err)
		}
		router.PathPrefix(riverUIPrefix).Handler(secHandler.Admin(ui))
	}

	// pprof
	router.PathPrefix(pprofPrefix).Handler(controller.PprofMux(pprofPrefix))

	// rate limit
	limiter := controller.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, opts.RateLimitClientTTL)
	if opts.RateLimitClientTTL > 0 {
		limiter.StartCleanup(ctx, opts.RateLimitClientTTL)
	}
	handler := limiter.Handler(router)

	// cors
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
