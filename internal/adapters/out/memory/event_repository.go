package memory

import (
	"context"
	"slices"

	"foodjourney/internal/core/domain/model/event"
)

// EventRepository implements ports.EventRepository inside a UnitOfWork.
type EventRepository struct {
	uow *UnitOfWork
}

func (r *EventRepository) Add(_ context.Context, e *event.Event) error {
	changes, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = e.Validate(); err != nil {
		return err
	}

	changes.events = append(changes.events, e)
	return nil
}

func (r *EventRepository) GetAll(_ context.Context) ([]*event.Event, error) {
	changes, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	return slices.Concat(r.uow.store.events, changes.events), nil
}
