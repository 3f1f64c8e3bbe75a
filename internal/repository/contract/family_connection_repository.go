package contract

import (
	"context"

	"voter-registry-be/internal/entity"
)

type FamilyConnectionRepository interface {
	// Create inserts one directed edge. Re-inserting an identical
	// (source, target, label) triple is a silent no-op, not an error.
	Create(ctx context.Context, sourceID, targetID uint, label string) error
	// Delete removes the matching edge; deleting an absent edge succeeds.
	Delete(ctx context.Context, sourceID, targetID uint, label string) error
	// ListForRecord returns the one-hop outgoing edges of a record joined
	// with a summary of each target, ordered by target name.
	ListForRecord(ctx context.Context, sourceID uint) ([]*entity.FamilyLink, error)
	Count(ctx context.Context) (int64, error)
}
