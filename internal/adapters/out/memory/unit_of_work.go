package memory

import (
	"context"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/core/ports"
)

// UnitOfWorkFactory creates units of work over one store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work. A unit of work must not be shared between goroutines.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// changeSet is what a transaction has written but not yet committed.
type changeSet struct {
	entities  []*entity.Entity
	entityIDs map[kernel.UUID]*entity.Entity

	newJourneys     []*journey.Journey
	newJourneyIndex map[kernel.UUID]int
	updatedJourneys map[kernel.UUID]*journey.Journey

	events []*event.Event
}

func newChangeSet() *changeSet {
	return &changeSet{
		entityIDs:       make(map[kernel.UUID]*entity.Entity),
		newJourneyIndex: make(map[kernel.UUID]int),
		updatedJourneys: make(map[kernel.UUID]*journey.Journey),
	}
}

// UnitOfWork serializes writers: Begin takes the store's write lock and
// Commit or Rollback releases it. Reads through its repositories see the
// committed state plus the changes staged so far.
type UnitOfWork struct {
	store   *Store
	changes *changeSet
}

// Begin starts a transaction. Calling Begin again on an active unit of work is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.changes != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	u.changes = newChangeSet()
	return nil
}

// Commit applies the staged changes and ends the transaction.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.changes == nil {
		return ErrNoActiveTransaction
	}

	u.store.apply(u.changes)
	u.changes = nil
	u.store.mu.Unlock()
	return nil
}

// Rollback discards the staged changes. After Commit it returns ErrNoActiveTransaction,
// which callers deferring Rollback may ignore.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.changes == nil {
		return ErrNoActiveTransaction
	}

	u.changes = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) EntityRepository() ports.EntityRepository {
	return &EntityRepository{uow: u}
}

func (u *UnitOfWork) JourneyRepository() ports.JourneyRepository {
	return &JourneyRepository{uow: u}
}

func (u *UnitOfWork) EventRepository() ports.EventRepository {
	return &EventRepository{uow: u}
}

// active returns the staged changes, or ErrNoActiveTransaction.
func (u *UnitOfWork) active() (*changeSet, error) {
	if u.changes == nil {
		return nil, ErrNoActiveTransaction
	}
	return u.changes, nil
}
