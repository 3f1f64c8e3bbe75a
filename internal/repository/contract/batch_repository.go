package contract

import (
	"context"

	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/repository/specification"
)

type BatchRepository interface {
	// Ensure inserts a batch by unique name or returns the existing one.
	Ensure(ctx context.Context, name string) (*entity.Batch, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Batch, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Batch, error)
	// Delete removes the batch and all records it owns; connections and
	// event links go with the records via FK cascade.
	Delete(ctx context.Context, id uint) error
	// FileNames lists the distinct source files inside a batch.
	FileNames(ctx context.Context, id uint) ([]string, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
