package memory

import (
	"context"
	"fmt"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
)

// EntityRepository implements ports.EntityRepository inside a UnitOfWork.
type EntityRepository struct {
	uow *UnitOfWork
}

// Add stages a new entity. The id must not be registered yet, committed or staged.
func (r *EntityRepository) Add(_ context.Context, e *entity.Entity) error {
	changes, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = e.Validate(); err != nil {
		return err
	}

	id := e.ID()
	_, committed := r.uow.store.entities[id]
	_, staged := changes.entityIDs[id]
	if committed || staged {
		return fmt.Errorf("%w: %s", ErrEntityAlreadyExists, id)
	}

	changes.entities = append(changes.entities, e)
	changes.entityIDs[id] = e
	return nil
}

func (r *EntityRepository) Get(_ context.Context, id kernel.UUID) (*entity.Entity, error) {
	changes, err := r.uow.active()
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	if e, ok := r.uow.store.entities[id]; ok {
		return e, nil
	}
	if e, ok := changes.entityIDs[id]; ok {
		return e, nil
	}
	return nil, errs.NewObjectNotFoundError("entity", id.String())
}

func (r *EntityRepository) GetAll(_ context.Context) ([]*entity.Entity, error) {
	changes, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	all := make([]*entity.Entity, 0, len(r.uow.store.entityOrder)+len(changes.entities))
	all = append(all, r.uow.store.entityOrder...)
	all = append(all, changes.entities...)
	return all, nil
}

func (r *EntityRepository) GetAllOfRoles(ctx context.Context, roles ...entity.Role) ([]*entity.Entity, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterByRoles(all, roles), nil
}
