// Package guard provides the ConstructorGuard pattern used by commands and queries
// to ensure they are only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is provided
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value structs that bypassed their constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed objects from zero values.
//
// Example:
//
//	type RetireVehicleCommand struct {
//	    vehicleID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewRetireVehicleCommand(id kernel.UUID) (RetireVehicleCommand, error) {
//	    ...
//	    return RetireVehicleCommand{vehicleID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RetireVehicleCommand) Validate() error {
//	    return c.guard.Validate(ErrRetireVehicleCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
