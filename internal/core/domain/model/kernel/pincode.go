package kernel

import (
	"fmt"

	"agrilease/internal/pkg/errs"
)

const pincodeLength = 6

// Pincode is a validated postal code. Devices and pricing rules are scoped
// by (device type, pincode), so a malformed pincode would silently break
// rule resolution; validation happens once, at construction.
type Pincode string

// NewPincode creates a Pincode from its string form. The code must be
// exactly six digits.
func NewPincode(s string) (Pincode, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("pincode")
	}
	if len(s) != pincodeLength {
		return "", errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q is not %d characters", s, pincodeLength))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q contains a non-digit character", s))
		}
	}
	return Pincode(s), nil
}

// String returns the pincode in its string form.
func (p Pincode) String() string {
	return string(p)
}

// Validate checks that the pincode is well formed. Used when
// reconstructing entities from persistence.
func (p Pincode) Validate() error {
	_, err := NewPincode(string(p))
	return err
}
