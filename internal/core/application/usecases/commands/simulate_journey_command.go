package commands

import (
	"errors"

	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrSimulateJourneyCommandIsNotConstructed = errors.New(
		"SimulateJourneyCommand must be created via NewSimulateJourneyCommand constructor",
	)
)

// SimulateJourneyCommand starts a new food journey with the given id.
//
// Example:
//
//	cmd, _ := NewSimulateJourneyCommand(kernel.NewUUID())
//	j, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrInsufficientEntities) {
//	    // register more entities first
//	}
type SimulateJourneyCommand struct { //nolint:recvcheck //using for validation
	journeyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSimulateJourneyCommand(journeyID kernel.UUID) (SimulateJourneyCommand, error) {
	cmd := SimulateJourneyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJourneyID(journeyID); err != nil {
		return SimulateJourneyCommand{}, err
	}

	return cmd, nil
}

func (c SimulateJourneyCommand) Validate() error {
	return c.guard.Validate(ErrSimulateJourneyCommandIsNotConstructed)
}

func (c SimulateJourneyCommand) JourneyID() kernel.UUID {
	return c.journeyID
}

func (c *SimulateJourneyCommand) setJourneyID(journeyID kernel.UUID) error {
	if err := journeyID.Validate(); err != nil {
		return err
	}
	c.journeyID = journeyID
	return nil
}
