package commands

import (
	"context"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
)

// RegisterEntityCommandHandler adds one entity to the registry and returns its new id.
// Food donors receive their food identifier here, as part of entity construction.
type RegisterEntityCommandHandler struct {
	uowFactory EntityUoWFactory
}

func NewRegisterEntityCommandHandler(uowFactory EntityUoWFactory) RegisterEntityCommandHandler {
	return RegisterEntityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle generates a fresh id, builds the entity and stores it.
func (h RegisterEntityCommandHandler) Handle(ctx context.Context, cmd RegisterEntityCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	e, err := entity.NewEntity(kernel.NewUUID(), cmd.Role(), cmd.Name(), cmd.Location())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EntityRepository().Add(ctx, e); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return e.ID(), nil
}
