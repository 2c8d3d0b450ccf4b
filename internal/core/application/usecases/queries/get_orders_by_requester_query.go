package queries

import (
	"errors"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/guard"
)

var ErrGetOrdersByRequesterQueryIsNotConstructed = errors.New(
	"GetOrdersByRequesterQuery must be created via NewGetOrdersByRequesterQuery constructor",
)

// GetOrdersByRequesterQuery retrieves every order raised by a requester,
// newest states included, for the requester's own order overview.
type GetOrdersByRequesterQuery struct {
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByRequesterQuery creates a query for a requester's orders.
func NewGetOrdersByRequesterQuery(requesterID kernel.UUID) (GetOrdersByRequesterQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return GetOrdersByRequesterQuery{}, err
	}

	return GetOrdersByRequesterQuery{
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRequesterQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRequesterQueryIsNotConstructed)
}

// RequesterID returns the requester whose orders are listed.
func (q GetOrdersByRequesterQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// GetOrdersByRequesterQueryResponse is one order owned by the requester.
// LeaseID is set once a lease has been created from the order.
type GetOrdersByRequesterQueryResponse struct {
	ID         kernel.UUID
	DeviceID   kernel.UUID
	OrderType  string
	Status     string
	PeriodFrom time.Time
	PeriodTo   time.Time
	Note       string
	LeaseID    *kernel.UUID
}
