package pricingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/pkg/errs"
)

// GormPricingRuleRepository implements PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRuleRepository creates a new GORM pricing rule repository.
func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// EnsureDefaultRuleIndex creates the partial unique index guaranteeing at
// most one active default rule per (device type, pincode) scope.
// AutoMigrate cannot express partial indexes, so schema setup calls this
// separately.
func EnsureDefaultRuleIndex(db *gorm.DB) error {
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_pricing_default_scope
		ON pricing_rules (device_type, pincode)
		WHERE effective_to IS NULL AND status = 'Active'`).Error
}

// Add saves a new pricing rule to the database. A second active default
// rule for an already-served scope fails with a conflict error.
func (r *GormPricingRuleRepository) Add(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("pricingRule", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pricing rule, rates included.
func (r *GormPricingRuleRepository) Update(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
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

// Get retrieves a pricing rule by ID.
func (r *GormPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingRuleDTO
	if err := r.db.WithContext(ctx).
		Preload("Rates").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricingRule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByScope retrieves every rule for a (device type, pincode) scope,
// inactive rules included.
func (r *GormPricingRuleRepository) GetAllByScope(
	ctx context.Context,
	deviceType string,
	pincode kernel.Pincode,
) ([]*pricing.Rule, error) {
	var dtos []PricingRuleDTO
	if err := r.db.WithContext(ctx).
		Preload("Rates").
		Order("effective_from").
		Find(&dtos, "device_type = ? AND pincode = ?", deviceType, pincode.String()).Error; err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// GormThresholdConfigRepository implements ThresholdConfigRepository using
// GORM. Threshold configs are plain reference data and are not tracked.
type GormThresholdConfigRepository struct {
	db *gorm.DB
}

// NewGormThresholdConfigRepository creates a new GORM threshold config
// repository.
func NewGormThresholdConfigRepository(db *gorm.DB) *GormThresholdConfigRepository {
	return &GormThresholdConfigRepository{db: db}
}

// Add saves a threshold config, replacing any existing config for the
// device type.
func (r *GormThresholdConfigRepository) Add(ctx context.Context, config pricing.ThresholdConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dto := thresholdFromDomain(config)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// GetByDeviceType retrieves the threshold config for a device type.
func (r *GormThresholdConfigRepository) GetByDeviceType(
	ctx context.Context,
	deviceType string,
) (pricing.ThresholdConfig, error) {
	if deviceType == "" {
		return pricing.ThresholdConfig{}, errs.NewValueIsRequiredError("deviceType")
	}

	var dto ThresholdConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "device_type = ?", deviceType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.ThresholdConfig{}, errs.NewObjectNotFoundError("thresholdConfig", deviceType)
		}
		return pricing.ThresholdConfig{}, err
	}

	return thresholdToDomain(dto)
}
