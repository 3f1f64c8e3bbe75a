package unitofwork

import (
	"context"

	"voter-registry-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical database session.
// Begin/Commit/Rollback bound multi-statement writes: the family workflows
// push a new record plus both directed edges through a single transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BatchRepository() contract.BatchRepository
	RecordRepository() contract.RecordRepository
	EventRepository() contract.EventRepository
	FamilyConnectionRepository() contract.FamilyConnectionRepository
	StatsRepository() contract.StatsRepository
}
