package commands

import (
	"errors"

	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrCompleteJourneyCommandIsNotConstructed = errors.New(
		"CompleteJourneyCommand must be created via NewCompleteJourneyCommand constructor",
	)
)

// CompleteJourneyCommand marks the journey with the given id as delivered.
type CompleteJourneyCommand struct { //nolint:recvcheck //using for validation
	journeyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteJourneyCommand(journeyID kernel.UUID) (CompleteJourneyCommand, error) {
	cmd := CompleteJourneyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJourneyID(journeyID); err != nil {
		return CompleteJourneyCommand{}, err
	}

	return cmd, nil
}

func (c CompleteJourneyCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJourneyCommandIsNotConstructed)
}

func (c CompleteJourneyCommand) JourneyID() kernel.UUID {
	return c.journeyID
}

func (c *CompleteJourneyCommand) setJourneyID(journeyID kernel.UUID) error {
	if err := journeyID.Validate(); err != nil {
		return err
	}
	c.journeyID = journeyID
	return nil
}
