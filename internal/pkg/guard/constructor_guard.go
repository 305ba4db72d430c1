package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created
// through their designated constructor functions. A struct embedding the
// guard can detect whether it was built by its constructor or left as a
// zero value, because only NewConstructorGuard sets the internal flag.
//
// Every command in this repo embeds one: a handler receiving a zero-value
// command fails Validate before any board is touched, so half-built
// requests never reach the engine.
//
// Example usage:
//
//	var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
//	    "AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
//	)
//
//	type AdvanceOrderCommand struct {
//	    category order.Category
//	    orderID  kernel.UUID
//
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAdvanceOrderCommand(category order.Category, orderID kernel.UUID) (AdvanceOrderCommand, error) {
//	    cmd := AdvanceOrderCommand{guard: guard.NewConstructorGuard()}
//	    if err := errors.Join(
//	        cmd.setCategory(category),
//	        cmd.setOrderID(orderID),
//	    ); err != nil {
//	        return AdvanceOrderCommand{}, err
//	    }
//	    return cmd, nil
//	}
//
//	func (c *AdvanceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain objects
// to ensure they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and object not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
