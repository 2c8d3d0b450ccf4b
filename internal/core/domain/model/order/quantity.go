package order

import (
	"fmt"

	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when attempting to use an
// improperly initialized Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity constructor")

// Quantity is the requested amount of equipment usage, expressed in hours
// and/or acres. At least one dimension must be present and every present
// dimension must be positive. When both are present, pricing computations
// give hours precedence.
type Quantity struct { //nolint:recvcheck //using for validation
	hours *int
	acres *int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. Pass nil for a dimension that was not
// requested.
func NewQuantity(hours, acres *int) (Quantity, error) {
	if hours == nil && acres == nil {
		return Quantity{}, errs.NewValueIsRequiredError("quantity: hours or acres")
	}
	if hours != nil && *hours <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("%d is not greater than 0", *hours))
	}
	if acres != nil && *acres <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("acres",
			fmt.Errorf("%d is not greater than 0", *acres))
	}

	q := Quantity{guard: guard.NewConstructorGuard()}
	if hours != nil {
		h := *hours
		q.hours = &h
	}
	if acres != nil {
		a := *acres
		q.acres = &a
	}
	return q, nil
}

// Hours returns the requested hours, nil when not requested.
func (q Quantity) Hours() *int {
	return q.hours
}

// Acres returns the requested acres, nil when not requested.
func (q Quantity) Acres() *int {
	return q.acres
}

// Validate checks that the quantity was created via NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
