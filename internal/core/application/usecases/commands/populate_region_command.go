package commands

import (
	"errors"
	"math"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrPopulateRegionCommandIsNotConstructed = errors.New(
		"PopulateRegionCommand must be created via NewPopulateRegionCommand constructor",
	)
)

// Seed lists the entity names of one role to place in a region.
type Seed struct {
	Role  entity.Role
	Names []string
}

// PopulateRegionCommand places every seed entity at a random point around the region center.
type PopulateRegionCommand struct { //nolint:recvcheck //using for validation
	center   kernel.Location
	radiusKm float64
	seeds    []Seed

	guard guard.ConstructorGuard
}

// NewPopulateRegionCommand validates the center, the spawn radius and every seed role.
// Seeds are copied; empty names are rejected.
func NewPopulateRegionCommand(center kernel.Location, radiusKm float64, seeds []Seed) (PopulateRegionCommand, error) {
	cmd := PopulateRegionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCenter(center),
		cmd.setRadiusKm(radiusKm),
		cmd.setSeeds(seeds),
	); err != nil {
		return PopulateRegionCommand{}, err
	}

	return cmd, nil
}

func (c PopulateRegionCommand) Validate() error {
	return c.guard.Validate(ErrPopulateRegionCommandIsNotConstructed)
}

func (c PopulateRegionCommand) Center() kernel.Location {
	return c.center
}

func (c PopulateRegionCommand) RadiusKm() float64 {
	return c.radiusKm
}

// Seeds returns the seed lists in the order entities are registered.
func (c PopulateRegionCommand) Seeds() []Seed {
	return c.seeds
}

func (c *PopulateRegionCommand) setCenter(center kernel.Location) error {
	if err := center.Validate(); err != nil {
		return err
	}
	c.center = center
	return nil
}

func (c *PopulateRegionCommand) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, math.MaxFloat64)
	}
	c.radiusKm = radiusKm
	return nil
}

func (c *PopulateRegionCommand) setSeeds(seeds []Seed) error {
	copied := make([]Seed, 0, len(seeds))
	var err error
	for _, seed := range seeds {
		if roleErr := seed.Role.Validate(); roleErr != nil {
			err = errors.Join(err, roleErr)
			continue
		}
		names := make([]string, 0, len(seed.Names))
		for _, name := range seed.Names {
			if name == "" {
				err = errors.Join(err, ErrNameIsRequired)
				continue
			}
			names = append(names, name)
		}
		copied = append(copied, Seed{Role: seed.Role, Names: names})
	}
	if err != nil {
		return err
	}
	c.seeds = copied
	return nil
}
