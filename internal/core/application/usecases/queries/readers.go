// Package queries contains the read operations of the food journey service.
// Handlers read committed state directly and return read models tailored to the caller.
package queries

import (
	"context"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
)

type (
	// EntityReader reads the committed registry.
	EntityReader interface {
		Entity(ctx context.Context, id kernel.UUID) (*entity.Entity, error)
		// Entities returns entities of any of roles in registration order; no roles means all.
		Entities(ctx context.Context, roles ...entity.Role) ([]*entity.Entity, error)
	}

	// JourneyReader reads the committed journey log.
	JourneyReader interface {
		Journeys(ctx context.Context) ([]*journey.Journey, error)
	}

	// EventReader reads the committed community events.
	EventReader interface {
		Events(ctx context.Context) ([]*event.Event, error)
	}
)
