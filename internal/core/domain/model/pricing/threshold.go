package pricing

import (
	"errors"

	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

// ErrThresholdConfigIsNotConstructed is returned when a ThresholdConfig was
// not created via NewThresholdConfig.
var ErrThresholdConfigIsNotConstructed = errors.New("ThresholdConfig must be created via NewThresholdConfig()")

// ThresholdConfig carries the per-device-type cutoffs used to decide
// whether a requested engagement is a short rental or a lease. A request
// whose quantity stays at or below both cutoffs is a rental; anything
// larger is a lease.
type ThresholdConfig struct {
	deviceType     string
	maxRentalHours int
	maxRentalAcres int

	guard.ConstructorGuard
}

// NewThresholdConfig creates a threshold config for a device type. Both
// cutoffs must be positive.
func NewThresholdConfig(deviceType string, maxRentalHours, maxRentalAcres int) (ThresholdConfig, error) {
	if deviceType == "" {
		return ThresholdConfig{}, errs.NewValueIsRequiredError("deviceType")
	}
	if maxRentalHours <= 0 {
		return ThresholdConfig{}, errs.NewValueIsInvalidError("maxRentalHours")
	}
	if maxRentalAcres <= 0 {
		return ThresholdConfig{}, errs.NewValueIsInvalidError("maxRentalAcres")
	}
	return ThresholdConfig{
		deviceType:       deviceType,
		maxRentalHours:   maxRentalHours,
		maxRentalAcres:   maxRentalAcres,
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

// DeviceType returns the device-type code the thresholds apply to.
func (t ThresholdConfig) DeviceType() string {
	return t.deviceType
}

// MaxRentalHours returns the rental cutoff in usage hours.
func (t ThresholdConfig) MaxRentalHours() int {
	return t.maxRentalHours
}

// MaxRentalAcres returns the rental cutoff in covered acres.
func (t ThresholdConfig) MaxRentalAcres() int {
	return t.maxRentalAcres
}

// WithinRental reports whether the requested quantities stay at or below
// both cutoffs. Nil quantities count as zero.
func (t ThresholdConfig) WithinRental(hours, acres *int) bool {
	if hours != nil && *hours > t.maxRentalHours {
		return false
	}
	if acres != nil && *acres > t.maxRentalAcres {
		return false
	}
	return true
}

// Validate ensures the ThresholdConfig was created via its constructor.
func (t ThresholdConfig) Validate() error {
	return t.ConstructorGuard.Validate(ErrThresholdConfigIsNotConstructed)
}
