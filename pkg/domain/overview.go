package domain

import "github.com/shopspring/decimal"

// Overview aggregates the figures shown on the admin dashboard.
type Overview struct {
	UsersByRole map[Role]int64
	// TotalBalance is the credit currently held by all users.
	TotalBalance decimal.Decimal
	// CommissionEarned is the sum of commissions retained on deposits and earnings.
	CommissionEarned decimal.Decimal
	// CompletedVolume is the sum of prices of completed placements.
	CompletedVolume decimal.Decimal

	PendingWebsites        int64
	PendingListings        int64
	PendingPurchases       int64
	OpenDisputes           int64
	PendingBalanceRequests int64
	PendingServiceRequests int64
}
