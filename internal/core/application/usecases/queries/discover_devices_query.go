package queries

import (
	"errors"
	"time"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/guard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrDiscoverDevicesQueryIsNotConstructed = errors.New(
	"DiscoverDevicesQuery must be created via NewDiscoverDevicesQuery constructor",
)

// DiscoverDevicesQuery searches for devices a searcher may raise an order
// against. Visibility depends on the searcher's role: distributors see
// unleased devices they could lease, farmers see leased devices they could
// rent time on.
//
// Example:
//
//	query, err := NewDiscoverDevicesQuery(actor.RoleFarmer, "tractor", &near, time.Now(), 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	devices, err := handler.Handle(ctx, query)
type DiscoverDevicesQuery struct {
	searcherRole actor.Role
	deviceType   string
	near         *kernel.GeoPoint
	asOf         time.Time
	page         int
	pageSize     int

	guard guard.ConstructorGuard
}

// NewDiscoverDevicesQuery creates a device discovery query. searcherRole
// may be actor.RoleUnknown for an unauthenticated searcher, who sees live
// devices regardless of lease state. deviceType may be empty to search
// every type, and near may be nil to skip distance calculation. Page
// numbers start at 1; the page size defaults to 20 and is capped at 100.
func NewDiscoverDevicesQuery(
	searcherRole actor.Role,
	deviceType string,
	near *kernel.GeoPoint,
	asOf time.Time,
	page int,
	pageSize int,
) (DiscoverDevicesQuery, error) {
	if searcherRole != actor.RoleUnknown {
		if err := searcherRole.Validate(); err != nil {
			return DiscoverDevicesQuery{}, err
		}
	}
	if near != nil {
		if err := near.Validate(); err != nil {
			return DiscoverDevicesQuery{}, err
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	return DiscoverDevicesQuery{
		searcherRole: searcherRole,
		deviceType:   deviceType,
		near:         near,
		asOf:         asOf,
		page:         page,
		pageSize:     pageSize,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DiscoverDevicesQuery) Validate() error {
	return q.guard.Validate(ErrDiscoverDevicesQueryIsNotConstructed)
}

// SearcherRole returns the searcher's active role.
func (q DiscoverDevicesQuery) SearcherRole() actor.Role {
	return q.searcherRole
}

// DeviceType returns the requested device-type filter, empty for all.
func (q DiscoverDevicesQuery) DeviceType() string {
	return q.deviceType
}

// Near returns the searcher's location, nil when distance is not wanted.
func (q DiscoverDevicesQuery) Near() *kernel.GeoPoint {
	return q.near
}

// AsOf returns the date pricing is resolved against.
func (q DiscoverDevicesQuery) AsOf() time.Time {
	return q.asOf
}

// Page returns the 1-based page number.
func (q DiscoverDevicesQuery) Page() int {
	return q.page
}

// PageSize returns the effective page size.
func (q DiscoverDevicesQuery) PageSize() int {
	return q.pageSize
}

// DiscoverDevicesQueryResponse is one discoverable device. IndicativeRate
// carries the first rate of the device's active pricing rule and is nil
// when no rule covers the query date. DistanceKm is nil when the query
// carried no location.
type DiscoverDevicesQueryResponse struct {
	ID             kernel.UUID
	DeviceType     string
	Pincode        kernel.Pincode
	Location       kernel.GeoPoint
	Leased         bool
	DistanceKm     *float64
	IndicativeRate *int64
	RateMetric     string
}
