// Package pricingrepo provides data transfer objects and mapping
// functions for pricing rule and threshold config persistence.
package pricingrepo

import (
	"time"

	"github.com/google/uuid"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
)

// PricingRuleDTO represents the database structure for persisting pricing
// rules. A NULL effective_to marks the scope's default rule.
type PricingRuleDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeviceType    string     `gorm:"type:varchar(64);not null;index:idx_pricing_scope"`
	Pincode       string     `gorm:"type:varchar(6);not null;index:idx_pricing_scope"`
	EffectiveFrom time.Time  `gorm:"type:timestamptz;not null"`
	EffectiveTo   *time.Time `gorm:"type:timestamptz"`
	Status        string     `gorm:"type:varchar(16);not null"`
	Rates         []RateDTO  `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "pricing_rules".
func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

// RateDTO represents one metric's rate within a pricing rule.
type RateDTO struct {
	RuleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Metric       string    `gorm:"type:varchar(16);primaryKey"`
	PricePerUnit int64     `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "pricing_rates".
func (RateDTO) TableName() string {
	return "pricing_rates"
}

// ThresholdConfigDTO represents the per-device-type rental cutoffs.
type ThresholdConfigDTO struct {
	DeviceType     string `gorm:"type:varchar(64);primaryKey"`
	MaxRentalHours int    `gorm:"type:int;not null"`
	MaxRentalAcres int    `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "threshold_configs".
func (ThresholdConfigDTO) TableName() string {
	return "threshold_configs"
}

// fromDomain converts a pricing rule to its database representation.
func fromDomain(aggregate *pricing.Rule) PricingRuleDTO {
	ruleID := aggregate.ID().Bytes()

	rates := make([]RateDTO, 0, len(aggregate.Rates()))
	for _, rate := range aggregate.Rates() {
		rates = append(rates, RateDTO{
			RuleID:       ruleID,
			Metric:       rate.Metric().String(),
			PricePerUnit: rate.PricePerUnit(),
		})
	}

	return PricingRuleDTO{
		ID:            ruleID,
		DeviceType:    aggregate.DeviceType(),
		Pincode:       aggregate.Pincode().String(),
		EffectiveFrom: aggregate.EffectiveFrom(),
		EffectiveTo:   aggregate.EffectiveTo(),
		Status:        aggregate.Status().String(),
		Rates:         rates,
	}
}

// toDomain converts a database DTO to a pricing rule.
func toDomain(dto PricingRuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}

	status, err := pricing.RuleStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	rates := make([]pricing.Rate, 0, len(dto.Rates))
	for _, rateDTO := range dto.Rates {
		metric, metricErr := pricing.MetricFromString(rateDTO.Metric)
		if metricErr != nil {
			return nil, metricErr
		}
		rate, rateErr := pricing.NewRate(metric, rateDTO.PricePerUnit)
		if rateErr != nil {
			return nil, rateErr
		}
		rates = append(rates, rate)
	}

	return pricing.RestoreRule(id, dto.DeviceType, pincode, rates,
		dto.EffectiveFrom, dto.EffectiveTo, status)
}

// thresholdToDomain converts a threshold config DTO to its domain value.
func thresholdToDomain(dto ThresholdConfigDTO) (pricing.ThresholdConfig, error) {
	return pricing.NewThresholdConfig(dto.DeviceType, dto.MaxRentalHours, dto.MaxRentalAcres)
}

// thresholdFromDomain converts a threshold config to its database
// representation.
func thresholdFromDomain(config pricing.ThresholdConfig) ThresholdConfigDTO {
	return ThresholdConfigDTO{
		DeviceType:     config.DeviceType(),
		MaxRentalHours: config.MaxRentalHours(),
		MaxRentalAcres: config.MaxRentalAcres(),
	}
}
