package commands

import (
	"errors"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/guard"
)

var ErrChangeDeviceStatusCommandIsNotConstructed = errors.New(
	"ChangeDeviceStatusCommand must be created via NewChangeDeviceStatusCommand constructor",
)

// ChangeDeviceStatusCommand represents an administrator's request to move
// a device through its lifecycle.
type ChangeDeviceStatusCommand struct { //nolint:recvcheck //using for validation
	deviceID  kernel.UUID
	actorRole actor.Role
	toStatus  device.Status

	guard guard.ConstructorGuard
}

// NewChangeDeviceStatusCommand creates a command to change device status.
func NewChangeDeviceStatusCommand(
	deviceID kernel.UUID,
	actorRole actor.Role,
	toStatus device.Status,
) (ChangeDeviceStatusCommand, error) {
	cmd := ChangeDeviceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeviceID(deviceID),
		cmd.setActorRole(actorRole),
		cmd.setToStatus(toStatus),
	); err != nil {
		return ChangeDeviceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeviceStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeviceStatusCommandIsNotConstructed)
}

// DeviceID returns the target device's identifier.
func (c ChangeDeviceStatusCommand) DeviceID() kernel.UUID {
	return c.deviceID
}

// ActorRole returns the caller's active role.
func (c ChangeDeviceStatusCommand) ActorRole() actor.Role {
	return c.actorRole
}

// ToStatus returns the requested status.
func (c ChangeDeviceStatusCommand) ToStatus() device.Status {
	return c.toStatus
}

func (c *ChangeDeviceStatusCommand) setDeviceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deviceID = id
	return nil
}

func (c *ChangeDeviceStatusCommand) setActorRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *ChangeDeviceStatusCommand) setToStatus(to device.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.toStatus = to
	return nil
}
