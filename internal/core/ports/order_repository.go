package ports

import (
	"context"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never physically deleted; terminal orders stay queryable.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is
	// conditional on the version read when the aggregate was loaded and
	// returns errs.ErrConflict when another writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByDevice retrieves every order referencing the device,
	// terminal orders included. Discovery uses this to exclude devices
	// with committed or in-progress usage.
	GetAllByDevice(ctx context.Context, deviceID kernel.UUID) ([]*order.Order, error)
}
