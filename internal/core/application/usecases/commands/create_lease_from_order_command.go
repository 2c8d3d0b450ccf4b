package commands

import (
	"errors"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

var ErrCreateLeaseFromOrderCommandIsNotConstructed = errors.New(
	"CreateLeaseFromOrderCommand must be created via NewCreateLeaseFromOrderCommand constructor",
)

// CreateLeaseFromOrderCommand represents an administrator converting an
// accepted Lease order into an active lease.
type CreateLeaseFromOrderCommand struct { //nolint:recvcheck //using for validation
	leaseID     kernel.UUID
	orderID     kernel.UUID
	actorRole   actor.Role
	deposit     int64
	attachments []ports.FileUpload

	guard guard.ConstructorGuard
}

// NewCreateLeaseFromOrderCommand creates a command to convert an accepted
// order into a lease.
func NewCreateLeaseFromOrderCommand(
	leaseID kernel.UUID,
	orderID kernel.UUID,
	actorRole actor.Role,
	deposit int64,
	attachments []ports.FileUpload,
) (CreateLeaseFromOrderCommand, error) {
	cmd := CreateLeaseFromOrderCommand{
		attachments: append([]ports.FileUpload(nil), attachments...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLeaseID(leaseID),
		cmd.setOrderID(orderID),
		cmd.setActorRole(actorRole),
		cmd.setDeposit(deposit),
	); err != nil {
		return CreateLeaseFromOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLeaseFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateLeaseFromOrderCommandIsNotConstructed)
}

// LeaseID returns the identifier assigned to the new lease.
func (c CreateLeaseFromOrderCommand) LeaseID() kernel.UUID {
	return c.leaseID
}

// OrderID returns the accepted order's identifier.
func (c CreateLeaseFromOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorRole returns the caller's active role.
func (c CreateLeaseFromOrderCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Deposit returns the agreed deposit in minor currency units.
func (c CreateLeaseFromOrderCommand) Deposit() int64 {
	return c.deposit
}

// Attachments returns the agreement files to store with the lease.
func (c CreateLeaseFromOrderCommand) Attachments() []ports.FileUpload {
	return append([]ports.FileUpload(nil), c.attachments...)
}

func (c *CreateLeaseFromOrderCommand) setLeaseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.leaseID = id
	return nil
}

func (c *CreateLeaseFromOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateLeaseFromOrderCommand) setActorRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *CreateLeaseFromOrderCommand) setDeposit(deposit int64) error {
	if deposit < 0 {
		return errs.NewValueIsInvalidError("deposit")
	}
	c.deposit = deposit
	return nil
}
