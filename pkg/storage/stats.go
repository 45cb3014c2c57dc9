package storage

import (
	"context"

	"backma/pkg/domain"
)

// StatsStorage computes the aggregates of the admin dashboard.
type StatsStorage interface {
	Overview(ctx context.Context) (*domain.Overview, error)
}
