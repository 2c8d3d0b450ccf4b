package lease

import (
	"fmt"

	"agrilease/internal/pkg/errs"
)

// Status represents the lifecycle state of a lease. A lease starts Active
// and ends either Completed (ran its course) or Terminated (cut short).
// Both end states release the leased device.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the distributor currently controls the device.
	StatusActive

	// StatusCompleted means the lease ran to its agreed end.
	StatusCompleted

	// StatusTerminated means the lease was ended early.
	StatusTerminated
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:     "Active",
		StatusCompleted:  "Completed",
		StatusTerminated: "Terminated",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name.
func StatusFromString(v string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == v {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid lease status", v))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid lease status", s))
	}
	return nil
}

// IsEnded reports whether the lease has reached an end state.
func (s Status) IsEnded() bool {
	return s == StatusCompleted || s == StatusTerminated
}
