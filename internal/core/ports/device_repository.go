// Package ports defines the contracts between the application core and
// infrastructure: repositories per aggregate, the unit of work, and the
// outbound side-effect ports (notification, audit, upload).
package ports

import (
	"context"

	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
)

// DeviceRepository defines the persistence contract for device aggregates.
type DeviceRepository interface {
	// Add persists a new device aggregate to storage.
	Add(ctx context.Context, aggregate *device.Device) error

	// Update persists changes to an existing device. The write is
	// conditional on the version read when the aggregate was loaded and
	// returns errs.ErrConflict when another writer got there first.
	Update(ctx context.Context, aggregate *device.Device) error

	// Get retrieves a device aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*device.Device, error)

	// GetAllLive retrieves all devices in Live status, the candidate set
	// for discovery.
	GetAllLive(ctx context.Context) ([]*device.Device, error)
}
