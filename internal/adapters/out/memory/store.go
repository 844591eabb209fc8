// Package memory keeps the entity registry, the journey log and the community events
// in process memory for the lifetime of the application.
//
// A Store is the single explicit context object shared by the HTTP handlers and the
// completion jobs. Writers go through a UnitOfWork, which holds the store's write lock
// from Begin until Commit or Rollback; changes are staged and applied on Commit only.
// Readers call the Store methods directly and take the read lock.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.EntityRepository().Add(ctx, e); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
)

var (
	// ErrEntityAlreadyExists is returned when an entity id is registered twice.
	ErrEntityAlreadyExists = errors.New("entity already exists")
	// ErrJourneyAlreadyExists is returned when a journey id is logged twice.
	ErrJourneyAlreadyExists = errors.New("journey already exists")
	// ErrNoActiveTransaction is returned by repositories and by Commit/Rollback outside a transaction.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// Store holds committed state. Entities and journeys are shared by pointer: the
// journey a caller receives is the one the log holds, so a later completion is
// visible through it. Journeys guard their own mutable state.
type Store struct {
	mu sync.RWMutex

	entities    map[kernel.UUID]*entity.Entity
	entityOrder []*entity.Entity

	journeyIndex map[kernel.UUID]int
	journeyLog   []*journey.Journey

	events []*event.Event
}

func NewStore() *Store {
	return &Store{
		entities:     make(map[kernel.UUID]*entity.Entity),
		journeyIndex: make(map[kernel.UUID]int),
	}
}

// Entity returns a registered entity or an errs.ObjectNotFoundError.
func (s *Store) Entity(_ context.Context, id kernel.UUID) (*entity.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("entity", id.String())
	}
	return e, nil
}

// Entities returns, in registration order, the entities having any of roles,
// or every entity when roles is empty.
func (s *Store) Entities(_ context.Context, roles ...entity.Role) ([]*entity.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(roles) == 0 {
		return slices.Clone(s.entityOrder), nil
	}
	return filterByRoles(s.entityOrder, roles), nil
}

// Journeys returns the journey log in creation order.
func (s *Store) Journeys(_ context.Context) ([]*journey.Journey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.journeyLog), nil
}

// Events returns the scheduled community events in scheduling order.
func (s *Store) Events(_ context.Context) ([]*event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.events), nil
}

// apply must be called with the write lock held.
func (s *Store) apply(c *changeSet) {
	for _, e := range c.entities {
		s.entities[e.ID()] = e
		s.entityOrder = append(s.entityOrder, e)
	}
	for id, j := range c.updatedJourneys {
		s.journeyLog[s.journeyIndex[id]] = j
	}
	for _, j := range c.newJourneys {
		s.journeyIndex[j.ID()] = len(s.journeyLog)
		s.journeyLog = append(s.journeyLog, j)
	}
	s.events = append(s.events, c.events...)
}

func filterByRoles(entities []*entity.Entity, roles []entity.Role) []*entity.Entity {
	result := make([]*entity.Entity, 0)
	for _, e := range entities {
		if e.HasRole(roles...) {
			result = append(result, e)
		}
	}
	return result
}
