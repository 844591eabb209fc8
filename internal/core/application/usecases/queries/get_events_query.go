package queries

import (
	"errors"
	"time"

	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrGetEventsQueryIsNotConstructed = errors.New(
		"GetEventsQuery must be created via NewGetEventsQuery constructor",
	)
)

// GetEventsQuery lists scheduled community events.
type GetEventsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetEventsQuery() GetEventsQuery {
	return GetEventsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetEventsQueryIsNotConstructed)
}

// EventResponse is the read model of a community event.
type EventResponse struct {
	ID     kernel.UUID
	Kind   string
	Date   time.Time
	Venue  EntityResponse
	Source event.VenueSource
}

// NewEventResponse builds the read model of e.
func NewEventResponse(e *event.Event) EventResponse {
	return EventResponse{
		ID:     e.ID(),
		Kind:   e.Kind(),
		Date:   e.Date(),
		Venue:  newEntityResponse(e.Venue()),
		Source: e.Source(),
	}
}
