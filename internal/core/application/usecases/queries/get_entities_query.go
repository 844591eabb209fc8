package queries

import (
	"errors"
	"slices"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrGetEntitiesQueryIsNotConstructed = errors.New(
		"GetEntitiesQuery must be created via NewGetEntitiesQuery constructor",
	)
)

// GetEntitiesQuery lists the registered entities of the given roles, or all entities.
//
// Example:
//
//	query, err := NewGetEntitiesQuery(entity.DeliveryLocation, entity.Institution)
//	entities, err := handler.Handle(ctx, query)
type GetEntitiesQuery struct { //nolint:recvcheck //using for validation
	roles []entity.Role

	guard guard.ConstructorGuard
}

// NewGetEntitiesQuery validates every role. No roles selects every entity.
func NewGetEntitiesQuery(roles ...entity.Role) (GetEntitiesQuery, error) {
	q := GetEntitiesQuery{guard: guard.NewConstructorGuard()}
	if err := q.setRoles(roles); err != nil {
		return GetEntitiesQuery{}, err
	}
	return q, nil
}

func (q GetEntitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetEntitiesQueryIsNotConstructed)
}

func (q GetEntitiesQuery) Roles() []entity.Role {
	return slices.Clone(q.roles)
}

func (q *GetEntitiesQuery) setRoles(roles []entity.Role) error {
	var err error
	for _, r := range roles {
		err = errors.Join(err, r.Validate())
	}
	if err != nil {
		return err
	}
	q.roles = slices.Clone(roles)
	return nil
}
