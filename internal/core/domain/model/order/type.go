package order

import (
	"fmt"

	"agrilease/internal/pkg/errs"
)

// Type distinguishes the two order flavors. A Lease order is a
// distributor's request for long-term equipment control and is handled by
// an administrator. A Rent order is a farmer's request to use equipment a
// distributor already controls and is handled by that distributor.
//
// The type is fixed at creation and determines which role may act as the
// order's handler.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeLease is a distributor-to-platform order.
	TypeLease

	// TypeRent is a farmer-to-distributor order.
	TypeRent
)

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeLease: "Lease",
		TypeRent:  "Rent",
	}
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if s, ok := getValidTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// TypeFromString parses an order type name.
func TypeFromString(v string) (Type, error) {
	for typ, name := range getValidTypeStrings() {
		if name == v {
			return typ, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a valid order type", v))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}
