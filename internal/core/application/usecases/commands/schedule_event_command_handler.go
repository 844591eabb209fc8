package commands

import (
	"context"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/services"
	"foodjourney/internal/core/ports"
)

// ScheduleEventCommandHandler finds a venue among registered entities and records the event.
type ScheduleEventCommandHandler struct {
	uowFactory EventUoWFactory
	resolver   services.LocationResolver
	geolocator ports.Geolocator
}

func NewScheduleEventCommandHandler(
	uowFactory EventUoWFactory,
	resolver services.LocationResolver,
	geolocator ports.Geolocator,
) ScheduleEventCommandHandler {
	return ScheduleEventCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		geolocator: geolocator,
	}
}

// Handle returns the scheduled event.
//
// Errors: services.ErrEntityNotFound when nothing is registered, ports.ErrLocationUnavailable
// when no query is given and the caller's position is unknown.
func (h ScheduleEventCommandHandler) Handle(ctx context.Context, cmd ScheduleEventCommand) (*event.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entities, err := uow.EntityRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	venue, source, err := h.venue(ctx, cmd.LocationQuery(), entities)
	if err != nil {
		return nil, err
	}

	e, err := event.NewEvent(cmd.EventID(), cmd.Kind(), cmd.Date(), venue, source)
	if err != nil {
		return nil, err
	}

	if err = uow.EventRepository().Add(ctx, e); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return e, nil
}

func (h ScheduleEventCommandHandler) venue(
	ctx context.Context,
	query string,
	entities []*entity.Entity,
) (*entity.Entity, event.VenueSource, error) {
	if query != "" {
		venue, err := h.resolver.Resolve(query, entities)
		return venue, event.FromQuery, err
	}

	position, err := h.geolocator.CurrentPosition(ctx)
	if err != nil {
		return nil, event.UnknownSource, err
	}

	venue, err := services.Nearest(position, entities)
	return venue, event.FromCurrentPosition, err
}
