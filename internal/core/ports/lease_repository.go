package ports

import (
	"context"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
)

// LeaseRepository defines the persistence contract for lease aggregates.
type LeaseRepository interface {
	// Add persists a new lease aggregate to storage.
	Add(ctx context.Context, aggregate *lease.Lease) error

	// Update persists changes to an existing lease aggregate.
	Update(ctx context.Context, aggregate *lease.Lease) error

	// Get retrieves a lease aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lease.Lease, error)

	// GetAllActiveExpiredBy retrieves all Active leases whose period ended
	// before the given instant. The expiry job ends these.
	GetAllActiveExpiredBy(ctx context.Context, now time.Time) ([]*lease.Lease, error)
}
