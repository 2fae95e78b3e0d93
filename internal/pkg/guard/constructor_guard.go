// Package guard holds small construction-time safety helpers shared by the
// domain model and the use case inputs.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embedding it in a
// struct lets Validate tell a constructed value apart from a zero value.
//
// Example usage:
//
//	var ErrPayloadNotConstructed = errors.New("Payload must be created via NewPayload")
//
//	type Payload struct {
//	    projectName string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewPayload(projectName string) Payload {
//	    return Payload{projectName: projectName, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Payload) Validate() error {
//	    return p.guard.Validate(ErrPayloadNotConstructed)
//	}
//
// The guard is immutable and safe to copy or share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
