// Package guard implements a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object makes zero-value instances
// detectable, so code paths can insist that objects were created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The guard holds a flag that only constructor functions can set, so any
// struct created by direct initialization fails validation.
//
// Example:
//
//	type Subtotal struct {
//	    amount int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewSubtotal(amount int64) Subtotal {
//	    return Subtotal{amount: amount, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Subtotal) Validate() error {
//	    return s.guard.Validate(ErrSubtotalNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it inside constructors of guarded domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object came from its constructor.
// Returns validationError for zero-value objects, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
