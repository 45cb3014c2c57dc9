package domain_test

import (
	"testing"

	"backma/pkg/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIsMoney(t *testing.T) {
	tests := map[string]bool{
		"10":     true,
		"10.5":   true,
		"10.500": true,
		"-3.20":  true,
		"0.01":   true,
		"0.001":  false,
		"12.345": false,
	}
	for in, want := range tests {
		require.Equal(t, want, domain.IsMoney(decimal.RequireFromString(in)), in)
	}
}
