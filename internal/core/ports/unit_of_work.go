package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary over the registry, the journey log
// and the event list. Changes become visible to other readers on Commit only.
type UnitOfWork interface {
	// Begin starts a transaction. Repositories are usable only between Begin and Commit.
	Begin(ctx context.Context) error

	// Commit applies staged changes and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback discards staged changes. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	EntityRepository() EntityRepository
	JourneyRepository() JourneyRepository
	EventRepository() EventRepository
}
