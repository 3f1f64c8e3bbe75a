package contract

import (
	"context"

	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/repository/specification"
)

type RecordRepository interface {
	// Create inserts a record with phone/whatsapp/photo normalization
	// applied. It never commits on its own: under a unit-of-work
	// transaction the insert stays pending until the caller commits.
	Create(ctx context.Context, record *entity.Record) error
	// Update overwrites all mutable fields of the record.
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error)
	// UpdateAge sets only the age column, for the recalculation workflow.
	UpdateAge(ctx context.Context, id uint, age int) error
	// UpdateRelationshipStatus sets only the relationship_status tag.
	UpdateRelationshipStatus(ctx context.Context, id uint, status string) error
	// AllWithBirthDate returns id + birth_date for every record carrying a
	// non-empty free-text birth date.
	AllWithBirthDate(ctx context.Context) ([]*entity.Record, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
