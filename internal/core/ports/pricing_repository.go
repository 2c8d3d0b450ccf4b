package ports

import (
	"context"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
)

// PricingRuleRepository defines the persistence contract for pricing
// rules. Resolution and conflict detection happen in the domain service
// over the slices these finders return.
type PricingRuleRepository interface {
	// Add persists a new pricing rule to storage.
	Add(ctx context.Context, aggregate *pricing.Rule) error

	// Update persists changes to an existing pricing rule.
	Update(ctx context.Context, aggregate *pricing.Rule) error

	// Get retrieves a pricing rule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error)

	// GetAllByScope retrieves every rule for a (device type, pincode)
	// scope, inactive rules included.
	GetAllByScope(ctx context.Context, deviceType string, pincode kernel.Pincode) ([]*pricing.Rule, error)
}

// ThresholdConfigRepository defines the persistence contract for the
// per-device-type rental cutoffs.
type ThresholdConfigRepository interface {
	// Add persists a threshold config to storage.
	Add(ctx context.Context, config pricing.ThresholdConfig) error

	// GetByDeviceType retrieves the threshold config for a device type.
	GetByDeviceType(ctx context.Context, deviceType string) (pricing.ThresholdConfig, error)
}
