// Package orderrepo provides data transfer objects and mapping functions
// for order persistence.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The handler is flattened into a kind plus an optional
// distributor reference; the quantity keeps both optional metrics.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderType            string     `gorm:"type:varchar(16);not null"`
	Status               string     `gorm:"type:varchar(32);not null;index"`
	DeviceID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequesterID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	HandlerKind          string     `gorm:"type:varchar(16);not null"`
	HandlerDistributorID *uuid.UUID `gorm:"type:uuid"`
	QtyHours             *int       `gorm:"type:int"`
	QtyAcres             *int       `gorm:"type:int"`
	PeriodFrom           time.Time  `gorm:"type:timestamptz;not null"`
	PeriodTo             time.Time  `gorm:"type:timestamptz;not null"`
	Note                 string     `gorm:"type:text;not null"`
	LeaseID              *uuid.UUID `gorm:"type:uuid"`
	Version              int64      `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var handlerDistributorID *uuid.UUID
	if distributorID, ok := aggregate.Handler().DistributorID(); ok {
		raw := distributorID.Bytes()
		handlerDistributorID = &raw
	}

	var leaseID *uuid.UUID
	if id := aggregate.Lease(); id != nil {
		raw := id.Bytes()
		leaseID = &raw
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderType:            aggregate.OrderType().String(),
		Status:               aggregate.Status().String(),
		DeviceID:             aggregate.DeviceID().Bytes(),
		RequesterID:          aggregate.RequesterID().Bytes(),
		HandlerKind:          aggregate.Handler().Kind().String(),
		HandlerDistributorID: handlerDistributorID,
		QtyHours:             aggregate.Quantity().Hours(),
		QtyAcres:             aggregate.Quantity().Acres(),
		PeriodFrom:           aggregate.Period().From(),
		PeriodTo:             aggregate.Period().To(),
		Note:                 aggregate.Note(),
		LeaseID:              leaseID,
		Version:              aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	deviceID, err := kernel.UUIDFromBytes(dto.DeviceID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	handler, err := handlerToDomain(dto)
	if err != nil {
		return nil, err
	}

	quantity, err := order.NewQuantity(dto.QtyHours, dto.QtyAcres)
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewDateRange(dto.PeriodFrom, dto.PeriodTo)
	if err != nil {
		return nil, err
	}

	var leaseID *kernel.UUID
	if dto.LeaseID != nil {
		restored, leaseErr := kernel.UUIDFromBytes((*dto.LeaseID)[:])
		if leaseErr != nil {
			return nil, leaseErr
		}
		leaseID = &restored
	}

	return order.RestoreOrder(id, orderType, status, deviceID, requesterID,
		handler, quantity, period, dto.Note, leaseID, dto.Version)
}

// handlerToDomain rebuilds the order handler. The distributor reference
// decides the kind: a stored distributor yields a distributor handler,
// otherwise the order is administrator-handled.
func handlerToDomain(dto OrderDTO) (order.Handler, error) {
	if dto.HandlerDistributorID == nil {
		return order.AdministratorHandler(), nil
	}

	distributorID, err := kernel.UUIDFromBytes((*dto.HandlerDistributorID)[:])
	if err != nil {
		return order.Handler{}, err
	}
	return order.DistributorHandler(distributorID)
}
