package commands

import (
	"context"
	"fmt"
	"time"

	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/services"
	"foodjourney/internal/core/ports"
)

// DefaultCompletionDelay is how long a simulated journey stays in progress.
const DefaultCompletionDelay = 5 * time.Second

// SimulateJourneyCommandHandler picks a donor, a picker and a delivery location,
// logs a new journey, announces it and schedules its completion.
//
// Ordering per journey: prepare the completion, commit, notify, then start the
// completion timer. The creation notice therefore always precedes the completion
// notice, and a completion that cannot be scheduled leaves nothing in the log.
type SimulateJourneyCommandHandler struct {
	uowFactory JourneyUoWFactory
	matcher    services.JourneyMatcher
	notifier   ports.JourneyNotifier
	scheduler  ports.CompletionScheduler
	delay      time.Duration
	now        func() time.Time
}

// NewSimulateJourneyCommandHandler creates the handler. A non-positive delay falls back to DefaultCompletionDelay.
func NewSimulateJourneyCommandHandler(
	uowFactory JourneyUoWFactory,
	matcher services.JourneyMatcher,
	notifier ports.JourneyNotifier,
	scheduler ports.CompletionScheduler,
	delay time.Duration,
) SimulateJourneyCommandHandler {
	if delay <= 0 {
		delay = DefaultCompletionDelay
	}
	return SimulateJourneyCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		notifier:   notifier,
		scheduler:  scheduler,
		delay:      delay,
		now:        time.Now,
	}
}

// Handle returns the new in-progress journey.
//
// Returns services.ErrInsufficientEntities, with nothing written, when any pool is empty.
// A scheduler error is returned before the commit, also with nothing written.
func (h SimulateJourneyCommandHandler) Handle(ctx context.Context, cmd SimulateJourneyCommand) (*journey.Journey, error) {
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

	entityRepo := uow.EntityRepository()
	donors, err := entityRepo.GetAllOfRoles(ctx, services.DonorRoles...)
	if err != nil {
		return nil, err
	}
	pickers, err := entityRepo.GetAllOfRoles(ctx, services.PickerRoles...)
	if err != nil {
		return nil, err
	}
	deliveryLocations, err := entityRepo.GetAllOfRoles(ctx, services.DeliveryLocationRoles...)
	if err != nil {
		return nil, err
	}

	match, err := h.matcher.Match(donors, pickers, deliveryLocations)
	if err != nil {
		return nil, err
	}

	j, err := journey.NewJourney(cmd.JourneyID(), match.Donor, match.Picker, match.DeliveryLocation, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.JourneyRepository().Add(ctx, j); err != nil {
		return nil, err
	}

	startCompletion, err := h.scheduler.PrepareCompletion(j.ID(), h.delay)
	if err != nil {
		return nil, fmt.Errorf("schedule completion of journey %s: %w", j.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.JourneyChanged(ctx, j)
	startCompletion()

	return j, nil
}
