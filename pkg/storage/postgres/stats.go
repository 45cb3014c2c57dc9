package postgres

import (
	"context"
	"fmt"

	"backma/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"
)

type roleCount struct {
	Role  string `db:"role"`
	Count int64  `db:"count"`
}

// Overview computes the admin dashboard figures. It is not a snapshot: the
// queries run independently unless p is bound to a transaction.
func (p *PgSQL) Overview(ctx context.Context) (*domain.Overview, error) {
	overview := domain.Overview{UsersByRole: make(map[domain.Role]int64)}

	var roles []roleCount
	if err := p.Builder.From(usersTable).
		Select(goqu.C("role"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.C("role")).
		ScanStructsContext(ctx, &roles); err != nil {
		return nil, fmt.Errorf("could not count users by role: %w", err)
	}
	for _, r := range roles {
		overview.UsersByRole[domain.Role(r.Role)] = r.Count
	}

	sums := []struct {
		ds   *goqu.SelectDataset
		dst  *decimal.Decimal
		name string
	}{
		{
			ds:   p.Builder.From(usersTable).Select(goqu.COALESCE(goqu.SUM("balance"), 0)),
			dst:  &overview.TotalBalance,
			name: "total balance",
		},
		{
			ds: p.Builder.From(transactionsTable).
				Select(goqu.COALESCE(goqu.SUM("commission"), 0)).
				Where(goqu.I("type").In(string(domain.TransactionTypeDeposit), string(domain.TransactionTypeEarning))),
			dst:  &overview.CommissionEarned,
			name: "commission earned",
		},
		{
			ds: p.Builder.From(purchasesTable).
				Select(goqu.COALESCE(goqu.SUM("price"), 0)).
				Where(goqu.I("status").Eq(string(domain.PurchaseStatusPlacementCompleted))),
			dst:  &overview.CompletedVolume,
			name: "completed volume",
		},
	}
	for _, s := range sums {
		if _, err := s.ds.ScanValContext(ctx, s.dst); err != nil {
			return nil, fmt.Errorf("could not compute %s: %w", s.name, err)
		}
	}

	counts := []struct {
		table string
		where goqu.Expression
		dst   *int64
	}{
		{websitesTable, goqu.I("status").Eq(string(domain.WebsiteStatusPending)), &overview.PendingWebsites},
		{listingsTable, goqu.I("status").Eq(string(domain.ListingStatusPending)), &overview.PendingListings},
		{purchasesTable, goqu.I("status").Eq(string(domain.PurchaseStatusPending)), &overview.PendingPurchases},
		{
			disputesTable,
			goqu.I("status").In(string(domain.DisputeStatusOpen), string(domain.DisputeStatusUnderReview)),
			&overview.OpenDisputes,
		},
		{
			balanceRequestsTable,
			goqu.I("status").Eq(string(domain.BalanceRequestStatusPending)),
			&overview.PendingBalanceRequests,
		},
		{
			serviceRequestsTable,
			goqu.I("status").Eq(string(domain.ServiceRequestStatusPending)),
			&overview.PendingServiceRequests,
		},
	}
	for _, c := range counts {
		n, err := p.Builder.From(c.table).Where(c.where).CountContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not count %s: %w", c.table, err)
		}
		*c.dst = n
	}

	return &overview, nil
}
