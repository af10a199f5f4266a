// Package guard provides the constructor guard pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so code can enforce that objects are only
// created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which prevents accidental use of
// directly-instantiated structs that bypassed invariant checks.
//
// Example:
//
//	type Receiver struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewReceiver(name string) (Receiver, error) {
//	    if name == "" {
//	        return Receiver{}, errors.New("name is required")
//	    }
//	    return Receiver{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
