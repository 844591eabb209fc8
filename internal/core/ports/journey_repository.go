package ports

import (
	"context"

	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
)

// JourneyRepository defines the storage contract for the journey log.
// Journeys are kept for the life of the process, completed ones included.
type JourneyRepository interface {
	// Add appends a new journey to the log.
	Add(ctx context.Context, j *journey.Journey) error

	// Update stores the new state of an existing journey.
	Update(ctx context.Context, j *journey.Journey) error

	// Get returns the journey with the given id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*journey.Journey, error)

	// GetAll returns every journey in creation order.
	GetAll(ctx context.Context) ([]*journey.Journey, error)
}
