// Package guard provides a defensive construction pattern for value objects
// and entities. Embedding a ConstructorGuard in a struct makes it possible to
// detect whether the struct was produced by its designated constructor or
// created as a zero value, which keeps domain invariants enforceable even for
// objects that travel by value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil validation error is supplied. It guarantees that validation of a
// zero-value object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor function. The zero value of the guard is "not constructed",
// so any struct that embeds it and is instantiated directly will fail
// validation.
//
// Example usage:
//
//	var ErrRefundNotConstructed = errors.New("Refund must be created via NewRefund")
//
//	type Refund struct {
//	    amount float64
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRefund(amount float64, reason string) (Refund, error) {
//	    if amount <= 0 {
//	        return Refund{}, errors.New("amount must be positive")
//	    }
//	    return Refund{
//	        amount: amount,
//	        reason: reason,
//	        guard:  guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (r Refund) Validate() error {
//	    return r.guard.Validate(ErrRefundNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor.
//
// Returns nil when the object was properly constructed. Otherwise it returns
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
