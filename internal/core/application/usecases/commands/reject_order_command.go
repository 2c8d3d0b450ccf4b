package commands

import (
	"errors"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a handler refusing an order.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role
	note      string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order.
func NewRejectOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	note string,
) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the caller's identity.
func (c RejectOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the caller's active role.
func (c RejectOrderCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Note returns the rejection note.
func (c RejectOrderCommand) Note() string {
	return c.note
}

func (c *RejectOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RejectOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *RejectOrderCommand) setActorRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}
