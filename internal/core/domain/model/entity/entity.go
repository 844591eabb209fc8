package entity

import (
	"errors"
	"strings"

	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"
	"foodjourney/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when an entity is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEntityIsNotConstructed is returned when using an Entity that did not come from NewEntity.
	ErrEntityIsNotConstructed = errors.New("Entity must be created via NewEntity constructor")
)

// Entity is a participant placed on the map.
//
// Business rules:
//   - id, role, name and location are validated in NewEntity and never change
//   - a FoodDonor gets a fresh food identifier in NewEntity; FoodID is nil for every other role
//
// Example usage:
//
//	loc, _ := kernel.NewLocation(23.0225, 72.5714)
//	donor, err := entity.NewEntity(kernel.NewUUID(), entity.FoodDonor, "Anand Hotel", loc)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(donor.FoodID()) // non-nil for donors
type Entity struct {
	id       kernel.UUID
	role     Role
	name     string
	location kernel.Location
	foodID   *kernel.UUID
	guard    guard.ConstructorGuard
}

// NewEntity creates a new Entity. All parameter errors are reported together.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - role: one of the Role constants (Unknown is rejected)
//   - name: display name; surrounding whitespace is trimmed, blank names are rejected
//   - location: placement on the map (must be valid)
func NewEntity(id kernel.UUID, role Role, name string, location kernel.Location) (*Entity, error) {
	e := &Entity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setRole(role),
		e.setName(name),
		e.setLocation(location),
	); err != nil {
		return nil, err
	}

	if role.CarriesFood() {
		foodID := kernel.NewUUID()
		e.foodID = &foodID
	}

	return e, nil
}

// Validate ensures the Entity was built by NewEntity.
func (e *Entity) Validate() error {
	if e == nil {
		return ErrEntityIsNotConstructed
	}
	return e.guard.Validate(ErrEntityIsNotConstructed)
}

// IsEqual compares entities by identifier.
func (e *Entity) IsEqual(other *Entity) bool {
	return other != nil && e.id.IsEqual(other.id)
}

func (e *Entity) ID() kernel.UUID {
	return e.id
}

func (e *Entity) Role() Role {
	return e.role
}

func (e *Entity) Name() string {
	return e.name
}

func (e *Entity) Location() kernel.Location {
	return e.location
}

// FoodID returns the food identifier of a FoodDonor, or nil for other roles.
func (e *Entity) FoodID() *kernel.UUID {
	if e.foodID == nil {
		return nil
	}
	id := *e.foodID
	return &id
}

// HasRole reports whether the entity's role is one of roles.
func (e *Entity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if e.role == r {
			return true
		}
	}
	return false
}

func (e *Entity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entity) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}

func (e *Entity) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	e.name = name
	return nil
}

func (e *Entity) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}
