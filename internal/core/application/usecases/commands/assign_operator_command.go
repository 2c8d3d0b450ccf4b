package commands

import (
	"errors"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand represents a request to assign an operator to an
// active lease.
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	leaseID    kernel.UUID
	operatorID kernel.UUID
	role       lease.OperatorRole
	assignedAt time.Time

	guard guard.ConstructorGuard
}

// NewAssignOperatorCommand creates a command to assign an operator.
func NewAssignOperatorCommand(
	leaseID kernel.UUID,
	operatorID kernel.UUID,
	role lease.OperatorRole,
	assignedAt time.Time,
) (AssignOperatorCommand, error) {
	cmd := AssignOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLeaseID(leaseID),
		cmd.setOperatorID(operatorID),
		cmd.setRole(role),
		cmd.setAssignedAt(assignedAt),
	); err != nil {
		return AssignOperatorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

// LeaseID returns the target lease's identifier.
func (c AssignOperatorCommand) LeaseID() kernel.UUID {
	return c.leaseID
}

// OperatorID returns the operator's identity.
func (c AssignOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Role returns the assignment role.
func (c AssignOperatorCommand) Role() lease.OperatorRole {
	return c.role
}

// AssignedAt returns the assignment timestamp.
func (c AssignOperatorCommand) AssignedAt() time.Time {
	return c.assignedAt
}

func (c *AssignOperatorCommand) setLeaseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.leaseID = id
	return nil
}

func (c *AssignOperatorCommand) setOperatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.operatorID = id
	return nil
}

func (c *AssignOperatorCommand) setRole(role lease.OperatorRole) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *AssignOperatorCommand) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	c.assignedAt = assignedAt
	return nil
}
