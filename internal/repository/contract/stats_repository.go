package contract

import (
	"context"

	"voter-registry-be/internal/entity"
)

// StatsRepository serves the read-only aggregations consumed by the
// dashboard pages. batchID narrows a breakdown to one batch when non-nil.
type StatsRepository interface {
	Totals(ctx context.Context) (*entity.RegistryTotals, error)
	GenderCounts(ctx context.Context, batchID *uint) ([]*entity.LabelCount, error)
	RelationshipStatusCounts(ctx context.Context) ([]*entity.LabelCount, error)
	AgeDistribution(ctx context.Context) ([]*entity.LabelCount, error)
	OccupationCounts(ctx context.Context, batchID *uint) ([]*entity.LabelCount, error)
}
