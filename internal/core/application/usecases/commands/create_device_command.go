package commands

import (
	"errors"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

var ErrCreateDeviceCommandIsNotConstructed = errors.New(
	"CreateDeviceCommand must be created via NewCreateDeviceCommand constructor",
)

// CreateDeviceCommand represents an administrator's request to onboard a
// new device. The device starts in Draft status; pricing and a separate
// status change take it live.
type CreateDeviceCommand struct { //nolint:recvcheck //using for validation
	deviceID   kernel.UUID
	actorRole  actor.Role
	deviceType string
	location   kernel.GeoPoint
	pincode    kernel.Pincode

	guard guard.ConstructorGuard
}

// NewCreateDeviceCommand creates a command to onboard a device.
func NewCreateDeviceCommand(
	deviceID kernel.UUID,
	actorRole actor.Role,
	deviceType string,
	location kernel.GeoPoint,
	pincode kernel.Pincode,
) (CreateDeviceCommand, error) {
	cmd := CreateDeviceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeviceID(deviceID),
		cmd.setActorRole(actorRole),
		cmd.setDeviceType(deviceType),
		cmd.setLocation(location),
		cmd.setPincode(pincode),
	); err != nil {
		return CreateDeviceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeviceCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeviceCommandIsNotConstructed)
}

// DeviceID returns the identifier assigned to the new device.
func (c CreateDeviceCommand) DeviceID() kernel.UUID {
	return c.deviceID
}

// ActorRole returns the caller's active role.
func (c CreateDeviceCommand) ActorRole() actor.Role {
	return c.actorRole
}

// DeviceType returns the device-type code.
func (c CreateDeviceCommand) DeviceType() string {
	return c.deviceType
}

// Location returns the device's coordinates.
func (c CreateDeviceCommand) Location() kernel.GeoPoint {
	return c.location
}

// Pincode returns the device's postal code.
func (c CreateDeviceCommand) Pincode() kernel.Pincode {
	return c.pincode
}

func (c *CreateDeviceCommand) setDeviceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deviceID = id
	return nil
}

func (c *CreateDeviceCommand) setActorRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *CreateDeviceCommand) setDeviceType(deviceType string) error {
	if deviceType == "" {
		return errs.NewValueIsRequiredError("deviceType")
	}
	c.deviceType = deviceType
	return nil
}

func (c *CreateDeviceCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreateDeviceCommand) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	c.pincode = pincode
	return nil
}
