package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, marketplace rules, email delivery, background workers and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level of the environment's logging preset when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS, "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// RateLimit configures the per-client request limit
		RateLimit struct {
			// RPS is the sustained number of requests per second per client, 0 disables limiting
			RPS float64 `env:"HTTP_RATE_LIMIT_RPS" env-default:"20" yaml:"rps"`
			// Burst is the number of requests a client may send at once
			Burst int `env:"HTTP_RATE_LIMIT_BURST" env-default:"40" yaml:"burst"`
			// ClientTTL is how long an idle client's bucket is remembered
			ClientTTL time.Duration `env:"HTTP_RATE_LIMIT_CLIENT_TTL" env-default:"10m" yaml:"clientTTL"`
		} `yaml:"rateLimit"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"backma" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// LockTimeout bounds waits on row locks such as the per-user balance lock
		LockTimeout time.Duration `env:"DATABASE_LOCK_TIMEOUT" env-default:"5s" yaml:"lockTimeout"`
		// StatementTimeout bounds every statement, zero keeps the server default
		StatementTimeout time.Duration `env:"DATABASE_STATEMENT_TIMEOUT" env-default:"0s" yaml:"statementTimeout"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair and token settings
	JWT struct {
		// PrivateKey is the PEM encoded RSA key signing access tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key verifying access tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// Issuer is written to and required in the iss claim
		Issuer string `env:"JWT_ISSUER" env-default:"backma" yaml:"issuer"`
		// TTL is the lifetime of tokens issued on login
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Marketplace contains the money rules of the platform
	Marketplace struct {
		// Currency is the ISO code balances are held in
		Currency string `env:"MARKETPLACE_CURRENCY" env-default:"MAD" yaml:"currency"`
		// DepositCommissionPercent is retained from approved deposits
		DepositCommissionPercent string `env:"MARKETPLACE_DEPOSIT_COMMISSION_PERCENT" env-default:"0" yaml:"depositCommissionPercent"` //nolint: lll
		// PublisherCommissionPercent is retained from publisher earnings on completed placements
		PublisherCommissionPercent string `env:"MARKETPLACE_PUBLISHER_COMMISSION_PERCENT" env-default:"20" yaml:"publisherCommissionPercent"` //nolint: lll
		// MinWithdrawal is the smallest amount a withdrawal request may ask for
		MinWithdrawal string `env:"MARKETPLACE_MIN_WITHDRAWAL" env-default:"100" yaml:"minWithdrawal"`
		// MaxPageSize caps the limit accepted by listing endpoints
		MaxPageSize uint `env:"MARKETPLACE_MAX_PAGE_SIZE" env-default:"100" yaml:"maxPageSize"`
	} `yaml:"marketplace"`

	// Mailer contains the transactional email provider settings
	Mailer struct {
		// BaseURL of the provider's HTTP API, empty logs emails instead of sending them
		BaseURL string `env:"MAILER_BASE_URL" yaml:"baseURL"`
		// APIKey authenticates against the provider
		APIKey string `env:"MAILER_API_KEY" yaml:"apiKey"`
		// From is the sender address
		From string `env:"MAILER_FROM" env-default:"no-reply@back.ma" yaml:"from"`
		// AdminEmail receives the periodic digest
		AdminEmail string `env:"MAILER_ADMIN_EMAIL" env-default:"admin@back.ma" yaml:"adminEmail"`
		// Timeout bounds a single provider call
		Timeout time.Duration `env:"MAILER_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"mailer"`

	// Worker contains the background job settings
	Worker struct {
		// MaxWorkers is the number of concurrent jobs on the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts is how often an email job is tried before it is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
		// DigestSchedule is the cron expression of the admin digest, empty disables it
		DigestSchedule string `env:"WORKER_DIGEST_SCHEDULE" env-default:"0 8 * * *" yaml:"digestSchedule"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// MarketplaceRules is the decimal form of the marketplace money settings.
type MarketplaceRules struct {
	DepositCommissionPercent   decimal.Decimal
	PublisherCommissionPercent decimal.Decimal
	MinWithdrawal              decimal.Decimal
}

// MarketplaceRules parses the marketplace money settings. Percentages must be
// within [0, 100] and the minimum withdrawal must not be negative.
func (c *Config) MarketplaceRules() (MarketplaceRules, error) {
	var rules MarketplaceRules
	for _, f := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
		max  decimal.Decimal
	}{
		{"depositCommissionPercent", c.Marketplace.DepositCommissionPercent, &rules.DepositCommissionPercent, hundred},
		{"publisherCommissionPercent", c.Marketplace.PublisherCommissionPercent, &rules.PublisherCommissionPercent, hundred},
		{"minWithdrawal", c.Marketplace.MinWithdrawal, &rules.MinWithdrawal, decimal.Zero},
	} {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return MarketplaceRules{}, fmt.Errorf("invalid marketplace.%s: %w", f.name, err)
		}
		if d.IsNegative() || (f.max.IsPositive() && d.GreaterThan(f.max)) {
			return MarketplaceRules{}, fmt.Errorf("marketplace.%s out of range: %s", f.name, d)
		}
		*f.dst = d
	}

	return rules, nil
}

var hundred = decimal.NewFromInt(100) //nolint: gochecknoglobals

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if _, err := cfg.MarketplaceRules(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
