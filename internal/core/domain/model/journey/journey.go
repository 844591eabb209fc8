package journey

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
)

var (
	// ErrJourneyIsNotConstructed is returned when a Journey was not created through NewJourney.
	ErrJourneyIsNotConstructed = errors.New("Journey must be created via NewJourney constructor")
	// ErrAlreadyCompleted is returned by Complete on a journey that already completed.
	ErrAlreadyCompleted = errors.New("journey is already completed")
)

// Journey is one simulated trip: donor -> picker -> delivery location.
//
// Journey follows these invariants:
//   - id is valid and never changes
//   - foodID equals the donor's food identifier at creation time
//   - donor, picker and deliveryLocation are references to registry entities; the journey never mutates them
//   - status changes only through Complete, once
//
// A Journey is shared between the journey log and its readers, so the status
// and completion time are guarded by mu.
type Journey struct {
	mu sync.RWMutex

	// id is the unique identifier for the journey
	id kernel.UUID

	// foodID identifies the parcel carried on this journey
	foodID kernel.UUID

	donor            *entity.Entity
	picker           *entity.Entity
	deliveryLocation *entity.Entity

	status Status

	createdAt   time.Time
	completedAt *time.Time

	// isConstructed ensures the journey was created via NewJourney
	isConstructed bool
}

// NewJourney creates an InProgress journey.
//
// Parameters:
//   - id: unique identifier for the journey
//   - donor: a FoodDonor entity; its food identifier is copied into the journey
//   - picker: a Picker entity
//   - deliveryLocation: a DeliveryLocation or Institution entity
//   - createdAt: creation time, recorded for the journey log
//
// Returns an aggregated validation error if any participant is missing or has the wrong role.
func NewJourney(
	id kernel.UUID,
	donor, picker, deliveryLocation *entity.Entity,
	createdAt time.Time,
) (*Journey, error) {
	j := &Journey{
		status:        InProgress,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setDonor(donor),
		j.setPicker(picker),
		j.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Journey instance was properly constructed through NewJourney.
func (j *Journey) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJourneyIsNotConstructed
	}

	return nil
}

// IsEqual compares journeys by identifier.
func (j *Journey) IsEqual(other *Journey) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Journey) ID() kernel.UUID {
	return j.id
}

func (j *Journey) FoodID() kernel.UUID {
	return j.foodID
}

func (j *Journey) Donor() *entity.Entity {
	return j.donor
}

func (j *Journey) Picker() *entity.Entity {
	return j.picker
}

func (j *Journey) DeliveryLocation() *entity.Entity {
	return j.deliveryLocation
}

func (j *Journey) Status() Status {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.status
}

func (j *Journey) CreatedAt() time.Time {
	return j.createdAt
}

// CompletedAt returns nil while the journey is in progress.
func (j *Journey) CompletedAt() *time.Time {
	_, completedAt := j.State()
	return completedAt
}

// State returns the status together with the completion time, read at the same instant.
func (j *Journey) State() (Status, *time.Time) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.completedAt == nil {
		return j.status, nil
	}
	t := *j.completedAt
	return j.status, &t
}

// Route returns the points to draw, in travel order: donor, picker, delivery location.
func (j *Journey) Route() []kernel.Location {
	return []kernel.Location{
		j.donor.Location(),
		j.picker.Location(),
		j.deliveryLocation.Location(),
	}
}

// Complete marks the journey as delivered.
//
// Returns ErrAlreadyCompleted (joined with the status error) when called a second
// time; the status and completion time are left untouched in that case.
func (j *Journey) Complete(at time.Time) error {
	if err := j.Validate(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	newStatus, err := j.status.Complete()
	if err != nil {
		if j.status == Completed {
			return errors.Join(ErrAlreadyCompleted, err)
		}
		return err
	}

	j.status = newStatus
	j.completedAt = &at
	return nil
}

func (j *Journey) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Journey) setDonor(donor *entity.Entity) error {
	if err := participant("donor", donor, entity.FoodDonor); err != nil {
		return err
	}
	foodID := donor.FoodID()
	if foodID == nil {
		return errs.NewValueIsRequiredError("donor food id")
	}
	j.donor = donor
	j.foodID = *foodID
	return nil
}

func (j *Journey) setPicker(picker *entity.Entity) error {
	if err := participant("picker", picker, entity.Picker); err != nil {
		return err
	}
	j.picker = picker
	return nil
}

func (j *Journey) setDeliveryLocation(deliveryLocation *entity.Entity) error {
	if err := participant("delivery location", deliveryLocation, entity.DeliveryLocation, entity.Institution); err != nil {
		return err
	}
	j.deliveryLocation = deliveryLocation
	return nil
}

func participant(param string, e *entity.Entity, roles ...entity.Role) error {
	if e == nil {
		return errs.NewValueIsRequiredError(param)
	}
	if err := e.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	if !e.HasRole(roles...) {
		return errs.NewValueIsInvalidErrorWithCause(
			param, fmt.Errorf("%s has role %s", e.Name(), e.Role()))
	}
	return nil
}
