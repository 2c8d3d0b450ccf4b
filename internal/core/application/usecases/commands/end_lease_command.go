package commands

import (
	"errors"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

var ErrEndLeaseCommandIsNotConstructed = errors.New(
	"EndLeaseCommand must be created via NewEndLeaseCommand constructor",
)

// EndLeaseCommand represents a request to end an active lease, either
// Completed (ran its course) or Terminated (cut short).
type EndLeaseCommand struct { //nolint:recvcheck //using for validation
	leaseID  kernel.UUID
	toStatus lease.Status

	guard guard.ConstructorGuard
}

// NewEndLeaseCommand creates a command to end a lease.
func NewEndLeaseCommand(leaseID kernel.UUID, toStatus lease.Status) (EndLeaseCommand, error) {
	cmd := EndLeaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLeaseID(leaseID),
		cmd.setToStatus(toStatus),
	); err != nil {
		return EndLeaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndLeaseCommand) Validate() error {
	return c.guard.Validate(ErrEndLeaseCommandIsNotConstructed)
}

// LeaseID returns the target lease's identifier.
func (c EndLeaseCommand) LeaseID() kernel.UUID {
	return c.leaseID
}

// ToStatus returns the requested end status.
func (c EndLeaseCommand) ToStatus() lease.Status {
	return c.toStatus
}

func (c *EndLeaseCommand) setLeaseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.leaseID = id
	return nil
}

func (c *EndLeaseCommand) setToStatus(to lease.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !to.IsEnded() {
		return errs.NewValueIsInvalidError("toStatus")
	}
	c.toStatus = to
	return nil
}
