package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"backma/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
  allowedOrigins: ["https://admin.back.ma"]
marketplace:
  publisherCommissionPercent: "15.5"
worker:
  maxWorkers: 4
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://admin.back.ma"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 4, cfg.Worker.MaxWorkers)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, "backma", cfg.Database.DatabaseName)
	require.Equal(t, 5*time.Second, cfg.Database.LockTimeout)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)

	rules, err := cfg.MarketplaceRules()
	require.NoError(t, err)
	require.True(t, rules.PublisherCommissionPercent.Equal(decimal.RequireFromString("15.5")))
	require.True(t, rules.DepositCommissionPercent.IsZero())
	require.True(t, rules.MinWithdrawal.Equal(decimal.NewFromInt(100)))
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "environment: development\n")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("MARKETPLACE_MIN_WITHDRAWAL", "250")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)

	rules, err := cfg.MarketplaceRules()
	require.NoError(t, err)
	require.True(t, rules.MinWithdrawal.Equal(decimal.NewFromInt(250)))
}

func TestLoad_InvalidMarketplaceRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not a number", content: "marketplace:\n  depositCommissionPercent: abc\n"},
		{name: "percent above 100", content: "marketplace:\n  publisherCommissionPercent: \"101\"\n"},
		{name: "negative minimum", content: "marketplace:\n  minWithdrawal: \"-1\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
