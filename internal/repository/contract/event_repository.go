package contract

import (
	"context"

	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/repository/specification"
)

type EventRepository interface {
	// Ensure inserts an event by unique name; an existing name is a no-op.
	Ensure(ctx context.Context, name string) (*entity.Event, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error)
	Delete(ctx context.Context, id uint) error
	// NamesForRecord lists event names assigned to a record, ordered by name.
	NamesForRecord(ctx context.Context, recordID uint) ([]string, error)
	// ReplaceForRecord swaps a record's event set wholesale: delete all
	// existing links, then insert the given ones.
	ReplaceForRecord(ctx context.Context, recordID uint, eventIDs []uint) error
	RecordIDsForEvent(ctx context.Context, eventID uint) ([]uint, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
