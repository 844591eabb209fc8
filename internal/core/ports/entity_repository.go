// Package ports defines the contracts between the food journey core and its infrastructure:
// storage, notification, scheduling and device geolocation.
package ports

import (
	"context"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
)

// EntityRepository defines the storage contract for the entity registry.
// The registry is append-only: entities are never updated or removed.
type EntityRepository interface {
	// Add stores a new entity. Registering an id twice is an error.
	Add(ctx context.Context, e *entity.Entity) error

	// Get returns the entity with the given id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*entity.Entity, error)

	// GetAll returns every registered entity in registration order.
	GetAll(ctx context.Context) ([]*entity.Entity, error)

	// GetAllOfRoles returns the entities having any of the given roles,
	// in registration order. No roles means no entities.
	GetAllOfRoles(ctx context.Context, roles ...entity.Role) ([]*entity.Entity, error)
}
