package commands

import (
	"errors"
	"strings"
	"time"

	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrScheduleEventCommandIsNotConstructed = errors.New(
		"ScheduleEventCommand must be created via NewScheduleEventCommand constructor",
	)
	ErrKindIsRequired = errs.NewValueIsRequiredError("kind")
	ErrDateIsRequired = errs.NewValueIsRequiredError("date")
)

// ScheduleEventCommand schedules a community event (e.g. "Surplus Sunday") on a day.
//
// The venue is resolved from locationQuery when it is not blank, otherwise from the
// current position of the caller.
type ScheduleEventCommand struct { //nolint:recvcheck //using for validation
	eventID       kernel.UUID
	kind          string
	date          time.Time
	locationQuery string

	guard guard.ConstructorGuard
}

func NewScheduleEventCommand(
	eventID kernel.UUID,
	kind string,
	date time.Time,
	locationQuery string,
) (ScheduleEventCommand, error) {
	cmd := ScheduleEventCommand{
		locationQuery: strings.TrimSpace(locationQuery),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEventID(eventID),
		cmd.setKind(kind),
		cmd.setDate(date),
	); err != nil {
		return ScheduleEventCommand{}, err
	}

	return cmd, nil
}

func (c ScheduleEventCommand) Validate() error {
	return c.guard.Validate(ErrScheduleEventCommandIsNotConstructed)
}

func (c ScheduleEventCommand) EventID() kernel.UUID {
	return c.eventID
}

func (c ScheduleEventCommand) Kind() string {
	return c.kind
}

func (c ScheduleEventCommand) Date() time.Time {
	return c.date
}

// LocationQuery is empty when the caller's position should be used.
func (c ScheduleEventCommand) LocationQuery() string {
	return c.locationQuery
}

func (c *ScheduleEventCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}
	c.eventID = eventID
	return nil
}

func (c *ScheduleEventCommand) setKind(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return ErrKindIsRequired
	}
	c.kind = kind
	return nil
}

func (c *ScheduleEventCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	c.date = date
	return nil
}
