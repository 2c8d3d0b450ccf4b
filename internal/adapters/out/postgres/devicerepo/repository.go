package devicerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
)

// GormDeviceRepository implements DeviceRepository using GORM.
type GormDeviceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeviceRepository creates a new GORM device repository.
func NewGormDeviceRepository(db *gorm.DB, tracker aggregateTracker) *GormDeviceRepository {
	return &GormDeviceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new device to the database.
func (r *GormDeviceRepository) Add(ctx context.Context, aggregate *device.Device) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing device. The write is conditional on the version
// the aggregate was loaded with; a concurrent writer that committed first
// makes the condition fail and the caller gets errs.ErrConflict.
func (r *GormDeviceRepository) Update(ctx context.Context, aggregate *device.Device) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&DeviceDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("device", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a device by ID.
func (r *GormDeviceRepository) Get(ctx context.Context, id kernel.UUID) (*device.Device, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeviceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("device", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLive retrieves all devices in Live status, sorted by ID.
func (r *GormDeviceRepository) GetAllLive(ctx context.Context) ([]*device.Device, error) {
	var dtos []DeviceDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ?", device.StatusLive.String()).Error; err != nil {
		return nil, err
	}

	devices := make([]*device.Device, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	return devices, nil
}
