// Package guard provides a lightweight mechanism to enforce that domain
// objects are created through their constructors rather than as zero values.
//
// A ConstructorGuard embedded in a struct is only marked as constructed when
// the struct was produced by a constructor that called NewConstructorGuard.
// Validating a zero-value guard fails, which lets aggregates and commands
// reject instances that bypassed their factory functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is
// provided and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the enclosing object was created through
// its constructor. The zero value is "not constructed".
//
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the "constructed" state.
// Constructors embed the result into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
