package device

import (
	"fmt"

	"agrilease/internal/pkg/errs"
)

// Status represents the lifecycle state of a physical device.
//
// Lifecycle:
//
//	Draft ──> Onboarded ──> Live <──> NotLive
//	                         │  \       │
//	                         │   UnderMaintenance
//	                         │       │
//	                         └──> Retired (permanent)
//
// Status transitions are administrator-driven. Retired is a final state:
// no further transitions are allowed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial state of a device being onboarded.
	StatusDraft

	// StatusOnboarded means onboarding is complete but the device is not
	// yet discoverable.
	StatusOnboarded

	// StatusLive means the device is in service and orderable, provided a
	// default pricing rule exists for its type and pincode.
	StatusLive

	// StatusNotLive means the device is temporarily out of service.
	StatusNotLive

	// StatusUnderMaintenance means the device is being serviced.
	StatusUnderMaintenance

	// StatusRetired means the device is permanently withdrawn.
	StatusRetired
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:            "Draft",
		StatusOnboarded:        "Onboarded",
		StatusLive:             "Live",
		StatusNotLive:          "NotLive",
		StatusUnderMaintenance: "UnderMaintenance",
		StatusRetired:          "Retired",
	}
}

// allowedTransitions lists the administrator-driven status moves.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:            {StatusOnboarded},
		StatusOnboarded:        {StatusLive, StatusRetired},
		StatusLive:             {StatusNotLive, StatusUnderMaintenance, StatusRetired},
		StatusNotLive:          {StatusLive, StatusUnderMaintenance, StatusRetired},
		StatusUnderMaintenance: {StatusLive, StatusNotLive, StatusRetired},
		StatusRetired:          {},
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
		fmt.Errorf("%q is not a valid device status", v))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid device status", s))
	}
	return nil
}

// CanTransitionTo reports whether the administrator may move a device from
// the current status to the target. Retired devices never leave Retired.
func (s Status) CanTransitionTo(to Status) bool {
	if s.Validate() != nil || to.Validate() != nil || s == to {
		return false
	}
	for _, allowed := range allowedTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}
