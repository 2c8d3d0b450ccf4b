package services

import (
	"fmt"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/pkg/errs"
)

// ErrNoThresholdConfig is returned by the threshold-based policy when no
// threshold configuration exists for the requested device type.
// Classifies as errs.ErrObjectNotFound.
var ErrNoThresholdConfig error = errs.NewObjectNotFoundError("deviceType", "threshold config")

// OrderTypeRequest carries the creation-time facts an order-type policy
// may consult.
type OrderTypeRequest struct {
	RequesterRole actor.Role
	DeviceType    string
	Quantity      order.Quantity
}

// OrderTypePolicy derives an order's type at creation time. Two strategies
// exist: role-based (who is asking) and threshold-based (how much is
// asked); the composition root selects one from configuration.
type OrderTypePolicy interface {
	DeriveType(req OrderTypeRequest) (order.Type, error)
}

// RoleBasedPolicy derives the order type from the requester's active role:
// a distributor requests long-term control (Lease), a farmer requests
// usage out of an existing lease (Rent). Administrators place no orders.
type RoleBasedPolicy struct{}

// NewRoleBasedPolicy creates a role-based order-type policy.
func NewRoleBasedPolicy() RoleBasedPolicy {
	return RoleBasedPolicy{}
}

// DeriveType maps the requester role to an order type.
func (p RoleBasedPolicy) DeriveType(req OrderTypeRequest) (order.Type, error) {
	switch req.RequesterRole {
	case actor.RoleDistributor:
		return order.TypeLease, nil
	case actor.RoleFarmer:
		return order.TypeRent, nil
	default:
		return order.TypeUnknown, errs.NewValueIsInvalidErrorWithCause("requesterRole",
			fmt.Errorf("role %s cannot place orders", req.RequesterRole))
	}
}

// ThresholdLookup fetches the threshold configuration for a device type.
// The application layer backs it with the threshold repository.
type ThresholdLookup func(deviceType string) (pricing.ThresholdConfig, bool)

// ThresholdBasedPolicy derives the order type from the requested quantity:
// a request within the device type's rental cutoffs is a Rent, anything
// larger is a Lease. Used where requesters have no platform role.
type ThresholdBasedPolicy struct {
	lookup ThresholdLookup
}

// NewThresholdBasedPolicy creates a threshold-based order-type policy.
func NewThresholdBasedPolicy(lookup ThresholdLookup) ThresholdBasedPolicy {
	return ThresholdBasedPolicy{lookup: lookup}
}

// DeriveType classifies the requested quantity against the device type's
// rental cutoffs.
func (p ThresholdBasedPolicy) DeriveType(req OrderTypeRequest) (order.Type, error) {
	cfg, ok := p.lookup(req.DeviceType)
	if !ok {
		return order.TypeUnknown, fmt.Errorf("%w: %s", ErrNoThresholdConfig, req.DeviceType)
	}

	if cfg.WithinRental(req.Quantity.Hours(), req.Quantity.Acres()) {
		return order.TypeRent, nil
	}
	return order.TypeLease, nil
}
