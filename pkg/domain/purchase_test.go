package domain_test

import (
	"testing"

	"backma/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPurchaseStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to domain.PurchaseStatus
		allowed  bool
	}{
		{domain.PurchaseStatusPending, domain.PurchaseStatusAccepted, true},
		{domain.PurchaseStatusPending, domain.PurchaseStatusRejected, true},
		{domain.PurchaseStatusPending, domain.PurchaseStatusCancelled, true},
		{domain.PurchaseStatusPending, domain.PurchaseStatusPlacementCompleted, false},
		{domain.PurchaseStatusAccepted, domain.PurchaseStatusArticleReady, true},
		{domain.PurchaseStatusAccepted, domain.PurchaseStatusCancelled, false},
		{domain.PurchaseStatusArticleReady, domain.PurchaseStatusPlacementPending, true},
		{domain.PurchaseStatusArticleReady, domain.PurchaseStatusAccepted, true},
		{domain.PurchaseStatusPlacementPending, domain.PurchaseStatusPlacementCompleted, true},
		{domain.PurchaseStatusPlacementPending, domain.PurchaseStatusRejected, false},
		{domain.PurchaseStatusPlacementCompleted, domain.PurchaseStatusRefunded, true},
		{domain.PurchaseStatusRejected, domain.PurchaseStatusPending, false},
		{domain.PurchaseStatusCancelled, domain.PurchaseStatusAccepted, false},
		{domain.PurchaseStatusRefunded, domain.PurchaseStatusPlacementCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPurchaseStatus_Terminal(t *testing.T) {
	require.True(t, domain.PurchaseStatusRejected.Terminal())
	require.True(t, domain.PurchaseStatusCancelled.Terminal())
	require.True(t, domain.PurchaseStatusRefunded.Terminal())
	require.False(t, domain.PurchaseStatusPending.Terminal())
	require.False(t, domain.PurchaseStatusPlacementCompleted.Terminal())
}

func TestPurchaseStatus_Disputable(t *testing.T) {
	require.False(t, domain.PurchaseStatusPending.Disputable())
	require.True(t, domain.PurchaseStatusAccepted.Disputable())
	require.True(t, domain.PurchaseStatusPlacementCompleted.Disputable())
	require.False(t, domain.PurchaseStatusRefunded.Disputable())
}

func TestServiceRequestStatus_CanTransitionTo(t *testing.T) {
	require.True(t, domain.ServiceRequestStatusPending.CanTransitionTo(domain.ServiceRequestStatusInProgress))
	require.True(t, domain.ServiceRequestStatusPending.CanTransitionTo(domain.ServiceRequestStatusCancelled))
	require.False(t, domain.ServiceRequestStatusPending.CanTransitionTo(domain.ServiceRequestStatusCompleted))
	require.True(t, domain.ServiceRequestStatusInProgress.CanTransitionTo(domain.ServiceRequestStatusCompleted))
	require.False(t, domain.ServiceRequestStatusCompleted.CanTransitionTo(domain.ServiceRequestStatusCancelled))
}

func TestValidators(t *testing.T) {
	require.True(t, domain.RolePublisher.Valid())
	require.False(t, domain.Role("owner").Valid())
	require.True(t, domain.LinkTypeNofollow.Valid())
	require.False(t, domain.LinkType("sponsored").Valid())
	require.True(t, domain.TransactionTypeChargeback.Valid())
	require.False(t, domain.TransactionType("gift").Valid())
	require.True(t, domain.BalanceRequestWithdrawal.Valid())
	require.False(t, domain.DisputeOutcome("split").Valid())
}
