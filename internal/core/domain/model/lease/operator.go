package lease

import (
	"fmt"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

// OperatorRole distinguishes the one primary operator from any number of
// secondary operators assigned to a lease.
type OperatorRole int

const (
	// OperatorRoleUnknown represents an invalid or undefined operator role.
	OperatorRoleUnknown OperatorRole = iota

	// OperatorRolePrimary is the single operator responsible for the
	// equipment. Assigning a new primary replaces the existing one.
	OperatorRolePrimary

	// OperatorRoleSecondary operators accumulate without limit.
	OperatorRoleSecondary
)

// String returns the human-readable name of the operator role.
func (r OperatorRole) String() string {
	switch r {
	case OperatorRolePrimary:
		return "Primary"
	case OperatorRoleSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// OperatorRoleFromString parses an operator role name.
func OperatorRoleFromString(v string) (OperatorRole, error) {
	switch v {
	case "Primary":
		return OperatorRolePrimary, nil
	case "Secondary":
		return OperatorRoleSecondary, nil
	default:
		return OperatorRoleUnknown, errs.NewValueIsInvalidErrorWithCause("operatorRole",
			fmt.Errorf("%q is not a valid operator role", v))
	}
}

// Validate checks if the OperatorRole value is valid.
func (r OperatorRole) Validate() error {
	if r != OperatorRolePrimary && r != OperatorRoleSecondary {
		return errs.NewValueIsInvalidErrorWithCause("operatorRole",
			fmt.Errorf("%d is not a valid operator role", r))
	}
	return nil
}

// ErrOperatorAssignmentIsNotConstructed is returned when attempting to use
// an improperly initialized OperatorAssignment.
var ErrOperatorAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"operator assignment must be created via NewOperatorAssignment constructor")

// OperatorAssignment links an operator identity to a lease in a role,
// stamped with the assignment time.
type OperatorAssignment struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	role       OperatorRole
	assignedAt time.Time
	guard      guard.ConstructorGuard
}

// NewOperatorAssignment creates a stamped assignment.
func NewOperatorAssignment(operatorID kernel.UUID, role OperatorRole, assignedAt time.Time) (OperatorAssignment, error) {
	if err := operatorID.Validate(); err != nil {
		return OperatorAssignment{}, err
	}
	if err := role.Validate(); err != nil {
		return OperatorAssignment{}, err
	}
	if assignedAt.IsZero() {
		return OperatorAssignment{}, errs.NewValueIsRequiredError("assignedAt")
	}

	return OperatorAssignment{
		operatorID: operatorID,
		role:       role,
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// OperatorID returns the assigned operator's identity.
func (a OperatorAssignment) OperatorID() kernel.UUID {
	return a.operatorID
}

// Role returns the assignment role.
func (a OperatorAssignment) Role() OperatorRole {
	return a.role
}

// AssignedAt returns the assignment timestamp.
func (a OperatorAssignment) AssignedAt() time.Time {
	return a.assignedAt
}

// Validate checks that the assignment was created via NewOperatorAssignment.
func (a OperatorAssignment) Validate() error {
	return a.guard.Validate(ErrOperatorAssignmentIsNotConstructed)
}
