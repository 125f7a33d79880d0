// Package guard provides a construction marker for value objects and
// commands. Embedding a ConstructorGuard lets a type detect whether it was
// created through its constructor or left as a zero value, so validation can
// reject accidentally uninitialized instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so construction checks always fail loudly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// is "not constructed"; only NewConstructorGuard produces a passing guard.
//
// Typical usage:
//
//	type Command struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand(name string) (Command, error) {
//	    if name == "" {
//	        return Command{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return Command{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
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
