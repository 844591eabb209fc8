// Package commands contains the operations that change the registry, the journey log
// and the event list. Every command is built through its constructor, validated again
// in Handle, and persisted inside a unit of work.
package commands

import (
	"context"

	"foodjourney/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EntityRepoFactory provides access to the registry within a transaction.
	EntityRepoFactory interface {
		EntityRepository() ports.EntityRepository
	}

	// JourneyRepoFactory provides access to the journey log within a transaction.
	JourneyRepoFactory interface {
		JourneyRepository() ports.JourneyRepository
	}

	// EventRepoFactory provides access to community events within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// EntityUoW is used by registry-only commands.
	EntityUoW interface {
		TxManager
		EntityRepoFactory
	}

	// EntityUoWFactory creates new entity unit of work instances.
	EntityUoWFactory interface {
		Create() EntityUoW
	}

	// JourneyUoW reads the registry and writes the journey log.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   donors, err := uow.EntityRepository().GetAllOfRoles(ctx, entity.FoodDonor)
	//   err = uow.JourneyRepository().Add(ctx, j)
	//
	//   err = uow.Commit(ctx)
	JourneyUoW interface {
		TxManager
		EntityRepoFactory
		JourneyRepoFactory
	}

	// JourneyUoWFactory creates new journey unit of work instances.
	JourneyUoWFactory interface {
		Create() JourneyUoW
	}

	// EventUoW reads the registry and writes community events.
	EventUoW interface {
		TxManager
		EntityRepoFactory
		EventRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}
)
