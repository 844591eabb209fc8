package commands

import (
	"context"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
)

// PopulateRegionCommandHandler registers the seed entities of a region in one transaction.
type PopulateRegionCommandHandler struct {
	uowFactory EntityUoWFactory
	sampler    *kernel.Sampler
}

// NewPopulateRegionCommandHandler creates the handler. A nil sampler uses the package-level random source.
func NewPopulateRegionCommandHandler(uowFactory EntityUoWFactory, sampler *kernel.Sampler) PopulateRegionCommandHandler {
	if sampler == nil {
		sampler = kernel.NewSampler(nil)
	}
	return PopulateRegionCommandHandler{
		uowFactory: uowFactory,
		sampler:    sampler,
	}
}

// Handle returns the ids of the registered entities in registration order.
// Either every seed entity is registered or none is.
func (h PopulateRegionCommandHandler) Handle(ctx context.Context, cmd PopulateRegionCommand) ([]kernel.UUID, error) {
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

	repo := uow.EntityRepository()
	ids := make([]kernel.UUID, 0)
	for _, seed := range cmd.Seeds() {
		for _, name := range seed.Names {
			location, err := h.sampler.Sample(cmd.Center(), cmd.RadiusKm())
			if err != nil {
				return nil, err
			}

			e, err := entity.NewEntity(kernel.NewUUID(), seed.Role, name, location)
			if err != nil {
				return nil, err
			}

			if err = repo.Add(ctx, e); err != nil {
				return nil, err
			}
			ids = append(ids, e.ID())
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
