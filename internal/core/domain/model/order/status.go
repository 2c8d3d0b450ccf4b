package order

import (
	"fmt"

	"agrilease/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> InterestRaised ──┬──> UnderReview ──┬──> Accepted ──> PickupScheduled ──> Active ──> Completed ──> Closed
//	                           │                  └──> Rejected
//	                           ├──> Accepted
//	                           ├──> Rejected
//	                           └──> Cancelled
//
// Closed, Rejected, and Cancelled are terminal: an order that reaches one
// of them is immutable. The machine is pure and stateless; no transition
// performs I/O or side effects.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is an order that has been composed but not submitted.
	StatusDraft

	// StatusInterestRaised is a submitted order awaiting handler action.
	// Orders are created in this status.
	StatusInterestRaised

	// StatusUnderReview means the handler is evaluating the order.
	StatusUnderReview

	// StatusAccepted means the handler approved the order. An accepted
	// Lease order is the sole source of a new lease.
	StatusAccepted

	// StatusPickupScheduled means equipment handover has been arranged.
	StatusPickupScheduled

	// StatusActive means the equipment is in the requester's hands.
	StatusActive

	// StatusCompleted means usage has finished and the equipment returned.
	StatusCompleted

	// StatusClosed is the terminal state of a successful order. A device
	// becomes discoverable again once its order reaches Closed.
	StatusClosed

	// StatusRejected is the terminal state of an order the handler refused.
	StatusRejected

	// StatusCancelled is the terminal state of an order the requester
	// withdrew.
	StatusCancelled
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:           "Draft",
		StatusInterestRaised:  "InterestRaised",
		StatusUnderReview:     "UnderReview",
		StatusAccepted:        "Accepted",
		StatusPickupScheduled: "PickupScheduled",
		StatusActive:          "Active",
		StatusCompleted:       "Completed",
		StatusClosed:          "Closed",
		StatusRejected:        "Rejected",
		StatusCancelled:       "Cancelled",
	}
}

// transitionTable is the exact set of allowed edges. No other edge is valid.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:           {StatusInterestRaised},
		StatusInterestRaised:  {StatusUnderReview, StatusAccepted, StatusRejected, StatusCancelled},
		StatusUnderReview:     {StatusAccepted, StatusRejected},
		StatusAccepted:        {StatusPickupScheduled},
		StatusPickupScheduled: {StatusActive},
		StatusActive:          {StatusCompleted},
		StatusCompleted:       {StatusClosed},
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
		fmt.Errorf("%q is not a valid order status", v))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether the status is final. Terminal orders are
// immutable.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s
// to the target status. It returns false when either status is invalid,
// when source and target are equal, when s is terminal, or when the edge
// is not in the transition table.
func (s Status) CanTransitionTo(to Status) bool {
	if s.Validate() != nil || to.Validate() != nil {
		return false
	}
	if s == to || s.IsTerminal() {
		return false
	}
	for _, allowed := range transitionTable()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedNextStates returns the set of statuses reachable in one step.
// Terminal and invalid statuses return an empty slice.
func (s Status) AllowedNextStates() []Status {
	if s.Validate() != nil || s.IsTerminal() {
		return []Status{}
	}
	next := transitionTable()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// BlocksAvailability reports whether an order in this status represents
// committed or in-progress usage of its device. Devices referenced by such
// orders are excluded from discovery; a Closed order releases the device
// back into discovery.
func (s Status) BlocksAvailability() bool {
	switch s {
	case StatusAccepted, StatusPickupScheduled, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}
