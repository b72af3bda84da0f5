// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values can be told apart from values that
// went through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard; the zero value fails Validate.
//
// Example usage:
//
//	var ErrWeighInNotConstructed = errors.New("WeighIn must be created via NewWeighIn")
//
//	type WeighIn struct {
//	    loadedKg float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (w WeighIn) Validate() error {
//	    return w.guard.Validate(ErrWeighInNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
