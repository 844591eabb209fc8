// Package event models community events (e.g. "Surplus Sunday" or a chef
// session) scheduled at a registered venue.
package event

import (
	"errors"
	"strings"
	"time"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrKindIsRequired        = errs.NewValueIsRequiredError("kind")
	ErrDateIsRequired        = errs.NewValueIsRequiredError("date")
	ErrVenueIsRequired       = errs.NewValueIsRequiredError("venue")
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")
)

// VenueSource records how the venue was found.
type VenueSource int

const (
	// UnknownSource is the zero value.
	UnknownSource VenueSource = iota
	// FromQuery means the venue was resolved from free text.
	FromQuery
	// FromCurrentPosition means the venue is the entity nearest to the caller.
	FromCurrentPosition
)

func (s VenueSource) String() string {
	switch s {
	case FromQuery:
		return "Query"
	case FromCurrentPosition:
		return "CurrentPosition"
	case UnknownSource:
	}
	return "Unknown"
}

// Event is an immutable scheduled community event.
type Event struct {
	id     kernel.UUID
	kind   string
	date   time.Time
	venue  *entity.Entity
	source VenueSource
	guard  guard.ConstructorGuard
}

// NewEvent validates and creates an event. date is truncated to the calendar day in UTC.
func NewEvent(id kernel.UUID, kind string, date time.Time, venue *entity.Entity, source VenueSource) (*Event, error) {
	e := &Event{
		source: source,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		e.setKind(kind),
		e.setDate(date),
		e.setVenue(venue),
	); err != nil {
		return nil, err
	}
	e.id = id

	return e, nil
}

func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e *Event) ID() kernel.UUID {
	return e.id
}

func (e *Event) Kind() string {
	return e.kind
}

// Date returns midnight UTC of the event day.
func (e *Event) Date() time.Time {
	return e.date
}

func (e *Event) Venue() *entity.Entity {
	return e.venue
}

func (e *Event) Source() VenueSource {
	return e.source
}

func (e *Event) setKind(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return ErrKindIsRequired
	}
	e.kind = kind
	return nil
}

func (e *Event) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	y, m, d := date.UTC().Date()
	e.date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

func (e *Event) setVenue(venue *entity.Entity) error {
	if venue == nil {
		return ErrVenueIsRequired
	}
	if err := venue.Validate(); err != nil {
		return err
	}
	e.venue = venue
	return nil
}
