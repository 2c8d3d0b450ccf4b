package leaserepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/pkg/errs"
)

// GormLeaseRepository implements LeaseRepository using GORM.
type GormLeaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLeaseRepository creates a new GORM lease repository.
func NewGormLeaseRepository(db *gorm.DB, tracker aggregateTracker) *GormLeaseRepository {
	return &GormLeaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lease to the database.
func (r *GormLeaseRepository) Add(ctx context.Context, aggregate *lease.Lease) error {
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

// Update saves an existing lease, operator assignments included.
func (r *GormLeaseRepository) Update(ctx context.Context, aggregate *lease.Lease) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Operator assignments are replaced wholesale so removals of a
	// replaced primary operator take effect.
	if err := r.db.WithContext(ctx).
		Delete(&OperatorDTO{}, "lease_id = ?", dto.ID).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a lease by ID.
func (r *GormLeaseRepository) Get(ctx context.Context, id kernel.UUID) (*lease.Lease, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LeaseDTO
	if err := r.db.WithContext(ctx).
		Preload("Operators").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lease", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveExpiredBy retrieves all Active leases whose period ended
// before the given instant.
func (r *GormLeaseRepository) GetAllActiveExpiredBy(ctx context.Context, now time.Time) ([]*lease.Lease, error) {
	var dtos []LeaseDTO
	if err := r.db.WithContext(ctx).
		Preload("Operators").
		Order("period_to").
		Find(&dtos, "status = ? AND period_to < ?", lease.StatusActive.String(), now).Error; err != nil {
		return nil, err
	}

	leases := make([]*lease.Lease, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}

	return leases, nil
}
