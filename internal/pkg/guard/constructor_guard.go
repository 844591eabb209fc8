// Package guard lets value objects, commands and queries detect whether they were
// built through their constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not a valid instance.
// Only NewConstructorGuard sets the internal flag, so a struct literal or a zero
// value fails Validate.
//
// Example:
//
//	var ErrSeedIsNotConstructed = errors.New("Seed must be created via NewSeed")
//
//	type Seed struct {
//	    role  entity.Role
//	    names []string
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Seed) Validate() error {
//	    return s.guard.Validate(ErrSeedIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
