package memory

import (
	"context"
	"fmt"

	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
)

// JourneyRepository implements ports.JourneyRepository inside a UnitOfWork.
// The log is append-only: Update may replace a stored journey but never move it.
// Get returns the logged journey itself, so changes made to it while the unit of
// work holds the write lock are seen by every holder of that journey.
type JourneyRepository struct {
	uow *UnitOfWork
}

func (r *JourneyRepository) Add(_ context.Context, j *journey.Journey) error {
	changes, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = j.Validate(); err != nil {
		return err
	}

	id := j.ID()
	_, committed := r.uow.store.journeyIndex[id]
	_, staged := changes.newJourneyIndex[id]
	if committed || staged {
		return fmt.Errorf("%w: %s", ErrJourneyAlreadyExists, id)
	}

	changes.newJourneyIndex[id] = len(changes.newJourneys)
	changes.newJourneys = append(changes.newJourneys, j)
	return nil
}

func (r *JourneyRepository) Update(_ context.Context, j *journey.Journey) error {
	changes, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = j.Validate(); err != nil {
		return err
	}

	id := j.ID()
	if i, ok := changes.newJourneyIndex[id]; ok {
		changes.newJourneys[i] = j
		return nil
	}
	if _, ok := r.uow.store.journeyIndex[id]; !ok {
		return errs.NewObjectNotFoundError("journey", id.String())
	}
	changes.updatedJourneys[id] = j
	return nil
}

func (r *JourneyRepository) Get(_ context.Context, id kernel.UUID) (*journey.Journey, error) {
	changes, err := r.uow.active()
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	if i, ok := changes.newJourneyIndex[id]; ok {
		return changes.newJourneys[i], nil
	}
	if j, ok := changes.updatedJourneys[id]; ok {
		return j, nil
	}
	if i, ok := r.uow.store.journeyIndex[id]; ok {
		return r.uow.store.journeyLog[i], nil
	}
	return nil, errs.NewObjectNotFoundError("journey", id.String())
}

func (r *JourneyRepository) GetAll(_ context.Context) ([]*journey.Journey, error) {
	changes, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	journeys := make([]*journey.Journey, 0, len(r.uow.store.journeyLog)+len(changes.newJourneys))
	for _, j := range r.uow.store.journeyLog {
		if updated, ok := changes.updatedJourneys[j.ID()]; ok {
			j = updated
		}
		journeys = append(journeys, j)
	}
	return append(journeys, changes.newJourneys...), nil
}
