package device

import (
	"errors"
	"fmt"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
)

// ErrDeviceIsNotConstructed is returned when a Device instance was not
// created through NewDevice or RestoreDevice.
var ErrDeviceIsNotConstructed = errors.New("Device must be created via NewDevice constructor")

// Device is the aggregate root for a physical equipment unit.
//
// Invariants:
//   - a device carries at most one active lease reference at a time
//   - currentLeaseID is set only at lease creation and cleared only when
//     the lease ends
//   - status moves only along administrator-driven transitions; Retired
//     is permanent
//
// The version field is the optimistic-concurrency token. Repositories must
// persist a device conditionally on the version it was read with, so two
// requests racing to assign a lease to the same device cannot both win.
type Device struct {
	id            kernel.UUID
	deviceType    string
	location      kernel.GeoPoint
	pincode       kernel.Pincode
	status        Status
	currentLease  *kernel.UUID
	version       int64
	isConstructed bool
}

// NewDevice creates a new device in Draft status. Used during
// administrator onboarding.
func NewDevice(id kernel.UUID, deviceType string, location kernel.GeoPoint, pincode kernel.Pincode) (*Device, error) {
	d := &Device{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDeviceType(deviceType),
		d.setLocation(location),
		d.setPincode(pincode),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDevice reconstructs a device from persistence, including its
// current status, lease reference, and concurrency version.
func RestoreDevice(
	id kernel.UUID,
	deviceType string,
	location kernel.GeoPoint,
	pincode kernel.Pincode,
	status Status,
	currentLease *kernel.UUID,
	version int64,
) (*Device, error) {
	d, err := NewDevice(id, deviceType, location, pincode)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentLease != nil {
		if err = currentLease.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	d.currentLease = currentLease
	d.version = version
	return d, nil
}

// Validate ensures the Device instance was properly constructed.
func (d *Device) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeviceIsNotConstructed
	}
	return nil
}

// IsEqual compares two devices by their unique identifiers.
func (d *Device) IsEqual(other *Device) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the device's unique identifier.
func (d *Device) ID() kernel.UUID {
	return d.id
}

// DeviceType returns the device-type code, e.g. "TRACTOR" or "HARVESTER".
func (d *Device) DeviceType() string {
	return d.deviceType
}

// Location returns the device's geographic position.
func (d *Device) Location() kernel.GeoPoint {
	return d.location
}

// Pincode returns the postal code the device is stationed in.
func (d *Device) Pincode() kernel.Pincode {
	return d.pincode
}

// Status returns the current lifecycle status.
func (d *Device) Status() Status {
	return d.status
}

// CurrentLease returns the active lease reference, nil when unleased.
func (d *Device) CurrentLease() *kernel.UUID {
	return d.currentLease
}

// IsLeased reports whether the device currently carries an active lease.
func (d *Device) IsLeased() bool {
	return d.currentLease != nil
}

// Version returns the optimistic-concurrency token the device was read with.
func (d *Device) Version() int64 {
	return d.version
}

// ChangeStatus moves the device to a new lifecycle status.
// Returns an InvalidTransition error when the move is not administrator-allowed.
// The pricing precondition for going Live is enforced by the command handler,
// which has access to the pricing rules.
func (d *Device) ChangeStatus(to Status) error {
	if !d.status.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError(d.status.String(), to.String())
	}
	d.status = to
	return nil
}

// AssignLease records the active lease reference on the device.
// Fails with PreconditionFailed when the device already carries a lease.
func (d *Device) AssignLease(leaseID kernel.UUID) error {
	if err := leaseID.Validate(); err != nil {
		return err
	}
	if d.currentLease != nil {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("device %s is already leased", d.id))
	}

	d.currentLease = &leaseID
	return nil
}

// ReleaseLease clears the active lease reference when a lease ends.
func (d *Device) ReleaseLease() {
	d.currentLease = nil
}

func (d *Device) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Device) setDeviceType(deviceType string) error {
	if deviceType == "" {
		return errs.NewValueIsRequiredError("deviceType")
	}
	d.deviceType = deviceType
	return nil
}

func (d *Device) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func (d *Device) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	d.pincode = pincode
	return nil
}
