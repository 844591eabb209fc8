package queries

import (
	"errors"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrGetEntityQueryIsNotConstructed = errors.New(
		"GetEntityQuery must be created via NewGetEntityQuery constructor",
	)
)

// GetEntityQuery looks up one registered entity by id.
type GetEntityQuery struct { //nolint:recvcheck //using for validation
	entityID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetEntityQuery(entityID kernel.UUID) (GetEntityQuery, error) {
	q := GetEntityQuery{guard: guard.NewConstructorGuard()}
	if err := q.setEntityID(entityID); err != nil {
		return GetEntityQuery{}, err
	}
	return q, nil
}

func (q GetEntityQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityQueryIsNotConstructed)
}

func (q GetEntityQuery) EntityID() kernel.UUID {
	return q.entityID
}

func (q *GetEntityQuery) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}
	q.entityID = entityID
	return nil
}

// EntityResponse is the read model of an entity, shared by every query that returns entities.
// FoodID is nil unless the entity is a food donor.
type EntityResponse struct {
	ID       kernel.UUID
	Role     entity.Role
	Name     string
	Location kernel.Location
	FoodID   *kernel.UUID
}

func newEntityResponse(e *entity.Entity) EntityResponse {
	return EntityResponse{
		ID:       e.ID(),
		Role:     e.Role(),
		Name:     e.Name(),
		Location: e.Location(),
		FoodID:   e.FoodID(),
	}
}
