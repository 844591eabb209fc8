package commands

import (
	"context"
	"time"

	"foodjourney/internal/core/ports"
)

// CompleteJourneyCommandHandler transitions one journey to Completed and announces it.
//
// A missing journey surfaces as errs.ObjectNotFoundError, a second completion as
// journey.ErrAlreadyCompleted. Neither is retried.
type CompleteJourneyCommandHandler struct {
	uowFactory JourneyUoWFactory
	notifier   ports.JourneyNotifier
	now        func() time.Time
}

func NewCompleteJourneyCommandHandler(
	uowFactory JourneyUoWFactory,
	notifier ports.JourneyNotifier,
) CompleteJourneyCommandHandler {
	return CompleteJourneyCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (h CompleteJourneyCommandHandler) Handle(ctx context.Context, cmd CompleteJourneyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JourneyRepository()
	j, err := repo.Get(ctx, cmd.JourneyID())
	if err != nil {
		return err
	}

	if err = j.Complete(h.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, j); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.JourneyChanged(ctx, j)
	return nil
}
