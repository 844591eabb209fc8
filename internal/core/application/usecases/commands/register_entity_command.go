package commands

import (
	"errors"
	"strings"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrRegisterEntityCommandIsNotConstructed = errors.New(
		"RegisterEntityCommand must be created via NewRegisterEntityCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// RegisterEntityCommand asks the registry to place a new entity on the map.
//
// Example:
//
//	cmd, err := NewRegisterEntityCommand(entity.FoodDonor, "Anand Hotel", location)
//	if err != nil {
//	    return fmt.Errorf("invalid entity: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type RegisterEntityCommand struct { //nolint:recvcheck //using for validation
	role     entity.Role
	name     string
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterEntityCommand validates the role, the name and the location.
func NewRegisterEntityCommand(role entity.Role, name string, location kernel.Location) (RegisterEntityCommand, error) {
	cmd := RegisterEntityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return RegisterEntityCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrRegisterEntityCommandIsNotConstructed for a zero value command.
func (c RegisterEntityCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEntityCommandIsNotConstructed)
}

func (c RegisterEntityCommand) Role() entity.Role {
	return c.role
}

func (c RegisterEntityCommand) Name() string {
	return c.name
}

func (c RegisterEntityCommand) Location() kernel.Location {
	return c.location
}

func (c *RegisterEntityCommand) setRole(role entity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterEntityCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterEntityCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
