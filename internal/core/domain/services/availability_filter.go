package services

import (
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/order"
)

// DeviceCandidate bundles a device with the signals the availability
// predicates need: whether its scope carries a default pricing rule, and
// the orders referencing it. The query layer assembles candidates; the
// filter stays pure.
type DeviceCandidate struct {
	Device            *device.Device
	HasDefaultPricing bool
	Orders            []*order.Order
}

// AvailabilityFilter decides whether a device is currently discoverable
// and orderable. Candidates are expected to be pre-filtered to working
// devices upstream; the filter applies its predicates in a fixed order so
// each exclusion has a single deciding reason.
type AvailabilityFilter struct{}

// NewAvailabilityFilter creates a new AvailabilityFilter instance.
func NewAvailabilityFilter() AvailabilityFilter {
	return AvailabilityFilter{}
}

// Filter returns the candidates that pass every predicate, preserving
// input order.
//
// Predicates, applied in order:
//  1. device-type match, when deviceType is non-empty
//  2. lease visibility by searcher role: farmers see only leased devices
//     (rentable), distributors only unleased devices (leaseable),
//     administrators and unauthenticated searchers see both
//  3. pricing presence: a device without a default rule for its scope is
//     never discoverable
//  4. order-state exclusion: any order in a state representing committed
//     or in-progress usage removes the device; a Closed order readmits it
func (f AvailabilityFilter) Filter(candidates []DeviceCandidate, searcherRole actor.Role, deviceType string) []DeviceCandidate {
	var available []DeviceCandidate
	for _, c := range candidates {
		if f.IsAvailable(c, searcherRole, deviceType) {
			available = append(available, c)
		}
	}
	return available
}

// IsAvailable applies the predicates to a single candidate.
func (f AvailabilityFilter) IsAvailable(c DeviceCandidate, searcherRole actor.Role, deviceType string) bool {
	if deviceType != "" && c.Device.DeviceType() != deviceType {
		return false
	}

	switch searcherRole {
	case actor.RoleFarmer:
		if !c.Device.IsLeased() {
			return false
		}
	case actor.RoleDistributor:
		if c.Device.IsLeased() {
			return false
		}
	}

	if !c.HasDefaultPricing {
		return false
	}

	for _, o := range c.Orders {
		if o.Status().BlocksAvailability() {
			return false
		}
	}

	return true
}
