package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrilease/internal/core/domain/model/kernel"
)

// GetOrdersByRequesterQueryHandler retrieves a requester's orders from the
// database as a raw read model, terminal states included.
type GetOrdersByRequesterQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRequesterQueryHandler creates a handler for requester
// order queries.
func NewGetOrdersByRequesterQueryHandler(db *gorm.DB) GetOrdersByRequesterQueryHandler {
	return GetOrdersByRequesterQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by period start, newest
// first.
func (h GetOrdersByRequesterQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRequesterQuery,
) ([]GetOrdersByRequesterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByRequesterQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			device_id,
			order_type,
			status,
			period_from,
			period_to,
			note,
			lease_id
		FROM orders
		WHERE requester_id = ?
		ORDER BY period_from DESC, id
	`, query.RequesterID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			deviceID   uuid.UUID
			orderType  string
			status     string
			periodFrom time.Time
			periodTo   time.Time
			note       string
			leaseID    *uuid.UUID
		)

		if err = rows.Scan(&id, &deviceID, &orderType, &status, &periodFrom, &periodTo, &note, &leaseID); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		devID, devErr := kernel.UUIDFromBytes(deviceID[:])
		if devErr != nil {
			return nil, devErr
		}

		resp := GetOrdersByRequesterQueryResponse{
			ID:         orderID,
			DeviceID:   devID,
			OrderType:  orderType,
			Status:     status,
			PeriodFrom: periodFrom,
			PeriodTo:   periodTo,
			Note:       note,
		}
		if leaseID != nil {
			restored, leaseErr := kernel.UUIDFromBytes(leaseID[:])
			if leaseErr != nil {
				return nil, leaseErr
			}
			resp.LeaseID = &restored
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
