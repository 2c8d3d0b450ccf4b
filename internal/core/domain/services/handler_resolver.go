package services

import (
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/pkg/errs"
)

// ErrDeviceAlreadyLeased is returned when a Lease order targets a device
// that already carries an active lease. Classifies as
// errs.ErrPreconditionFailed.
var ErrDeviceAlreadyLeased error = errs.NewPreconditionFailedError("device already leased")

// ErrDeviceNotLeased is returned when a Rent order targets a device with
// no active lease; rentals are served out of an existing lease.
// Classifies as errs.ErrPreconditionFailed.
var ErrDeviceNotLeased error = errs.NewPreconditionFailedError("device not leased")

// HandlerResolver routes an order to its responsible handling party.
//
// Business rules:
//   - Lease orders are handled by the administrator role; any
//     administrator may act, so no specific identity is recorded. The
//     device must be unleased.
//   - Rent orders are handled by the distributor holding the device's
//     current lease. The device must be leased, and the caller must have
//     loaded that lease record before resolving.
type HandlerResolver struct{}

// NewHandlerResolver creates a new HandlerResolver instance.
func NewHandlerResolver() HandlerResolver {
	return HandlerResolver{}
}

// Resolve returns the handler descriptor for an order of the given type
// against the device. For Rent orders currentLease must be the lease the
// device's lease reference points at; the caller fails with an
// object-not-found error before resolving when that record is missing.
func (r HandlerResolver) Resolve(orderType order.Type, dev *device.Device, currentLease *lease.Lease) (order.Handler, error) {
	if err := dev.Validate(); err != nil {
		return order.Handler{}, err
	}

	switch orderType {
	case order.TypeLease:
		if dev.IsLeased() {
			return order.Handler{}, ErrDeviceAlreadyLeased
		}
		return order.AdministratorHandler(), nil

	case order.TypeRent:
		if !dev.IsLeased() || currentLease == nil {
			return order.Handler{}, ErrDeviceNotLeased
		}
		return order.DistributorHandler(currentLease.DistributorID())

	default:
		return order.Handler{}, orderType.Validate()
	}
}
