package queries

import (
	"errors"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

var ErrGetActivePricingQueryIsNotConstructed = errors.New(
	"GetActivePricingQuery must be created via NewGetActivePricingQuery constructor",
)

// GetActivePricingQuery resolves the pricing rule in force for a
// (device type, pincode) scope on a given date. A time-specific rule
// covering the date wins over the scope's default rule.
type GetActivePricingQuery struct {
	deviceType string
	pincode    kernel.Pincode
	asOf       time.Time

	guard guard.ConstructorGuard
}

// NewGetActivePricingQuery creates a query for the active pricing of a
// scope. A zero asOf resolves against the current time.
func NewGetActivePricingQuery(deviceType string, pincode kernel.Pincode, asOf time.Time) (GetActivePricingQuery, error) {
	if deviceType == "" {
		return GetActivePricingQuery{}, errs.NewValueIsRequiredError("deviceType")
	}
	if err := pincode.Validate(); err != nil {
		return GetActivePricingQuery{}, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	return GetActivePricingQuery{
		deviceType: deviceType,
		pincode:    pincode,
		asOf:       asOf,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActivePricingQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePricingQueryIsNotConstructed)
}

// DeviceType returns the scope's device-type code.
func (q GetActivePricingQuery) DeviceType() string {
	return q.deviceType
}

// Pincode returns the scope's postal code.
func (q GetActivePricingQuery) Pincode() kernel.Pincode {
	return q.pincode
}

// AsOf returns the date the rule is resolved against.
func (q GetActivePricingQuery) AsOf() time.Time {
	return q.asOf
}

// RateResponse is a single metric's rate within a resolved rule.
type RateResponse struct {
	Metric       string
	PricePerUnit int64
}

// GetActivePricingQueryResponse is the rule in force for the queried
// scope and date. EffectiveTo is nil for the scope's default rule.
type GetActivePricingQueryResponse struct {
	RuleID        kernel.UUID
	IsDefault     bool
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Rates         []RateResponse
}
