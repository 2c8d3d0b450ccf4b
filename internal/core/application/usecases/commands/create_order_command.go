package commands

import (
	"errors"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a requester's submission of a new order
// against a device. The order type is not part of the command: it is
// derived at handling time by the configured order-type policy.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, deviceID, requesterID,
//	    actor.RoleFarmer, quantity, period, "need for sowing season")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	deviceID      kernel.UUID
	requesterID   kernel.UUID
	requesterRole actor.Role
	quantity      order.Quantity
	period        kernel.DateRange
	note          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	deviceID kernel.UUID,
	requesterID kernel.UUID,
	requesterRole actor.Role,
	quantity order.Quantity,
	period kernel.DateRange,
	note string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeviceID(deviceID),
		cmd.setRequesterID(requesterID),
		cmd.setRequesterRole(requesterRole),
		cmd.setQuantity(quantity),
		cmd.setPeriod(period),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeviceID returns the target device's identifier.
func (c CreateOrderCommand) DeviceID() kernel.UUID {
	return c.deviceID
}

// RequesterID returns the requester's identity.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// RequesterRole returns the requester's active role.
func (c CreateOrderCommand) RequesterRole() actor.Role {
	return c.requesterRole
}

// Quantity returns the requested usage amount.
func (c CreateOrderCommand) Quantity() order.Quantity {
	return c.quantity
}

// Period returns the requested date range.
func (c CreateOrderCommand) Period() kernel.DateRange {
	return c.period
}

// Note returns the requester's free-text note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setDeviceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deviceID = id
	return nil
}

func (c *CreateOrderCommand) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requesterID = id
	return nil
}

func (c *CreateOrderCommand) setRequesterRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.requesterRole = role
	return nil
}

func (c *CreateOrderCommand) setQuantity(q order.Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	c.quantity = q
	return nil
}

func (c *CreateOrderCommand) setPeriod(p kernel.DateRange) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.period = p
	return nil
}
