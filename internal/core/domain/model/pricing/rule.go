package pricing

import (
	"errors"
	"fmt"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not created
// through NewDefaultRule, NewTimeSpecificRule, or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via a pricing rule constructor")

// RuleStatus marks whether a rule participates in resolution.
type RuleStatus int

const (
	// RuleStatusUnknown represents an invalid or undefined status.
	RuleStatusUnknown RuleStatus = iota

	// RuleStatusActive rules participate in pricing resolution.
	RuleStatusActive

	// RuleStatusInactive rules are retained but ignored by resolution.
	RuleStatusInactive
)

// String returns the human-readable name of the rule status.
func (s RuleStatus) String() string {
	switch s {
	case RuleStatusActive:
		return "Active"
	case RuleStatusInactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// RuleStatusFromString parses a rule status name.
func RuleStatusFromString(v string) (RuleStatus, error) {
	switch v {
	case "Active":
		return RuleStatusActive, nil
	case "Inactive":
		return RuleStatusInactive, nil
	default:
		return RuleStatusUnknown, errs.NewValueIsInvalidErrorWithCause("ruleStatus",
			fmt.Errorf("%q is not a valid rule status", v))
	}
}

// Validate checks if the RuleStatus value is valid.
func (s RuleStatus) Validate() error {
	if s != RuleStatusActive && s != RuleStatusInactive {
		return errs.NewValueIsInvalidErrorWithCause("ruleStatus",
			fmt.Errorf("%d is not a valid rule status", s))
	}
	return nil
}

// Rule is a rate rule scoped to (device type, pincode) with a validity
// window. A default rule has no end date: it is the open-ended fallback
// for its scope, and at most one may exist per scope. A time-specific rule
// has an end date and takes precedence over the default rule for any date
// it covers.
type Rule struct {
	id            kernel.UUID
	deviceType    string
	pincode       kernel.Pincode
	rates         []Rate
	effectiveFrom time.Time
	effectiveTo   *time.Time
	status        RuleStatus
	isConstructed bool
}

// NewDefaultRule creates the open-ended rule for a scope. Uniqueness per
// scope is enforced at creation time through the resolver's conflict
// check, not here.
func NewDefaultRule(
	id kernel.UUID,
	deviceType string,
	pincode kernel.Pincode,
	rates []Rate,
	effectiveFrom time.Time,
) (*Rule, error) {
	return newRule(id, deviceType, pincode, rates, effectiveFrom, nil)
}

// NewTimeSpecificRule creates a bounded-window rule for a scope.
func NewTimeSpecificRule(
	id kernel.UUID,
	deviceType string,
	pincode kernel.Pincode,
	rates []Rate,
	effectiveFrom time.Time,
	effectiveTo time.Time,
) (*Rule, error) {
	if effectiveTo.IsZero() {
		return nil, errs.NewValueIsRequiredError("effectiveTo")
	}
	if effectiveFrom.After(effectiveTo) {
		return nil, errs.NewValueIsInvalidErrorWithCause("effectiveTo",
			fmt.Errorf("window end %s precedes start %s",
				effectiveTo.Format(time.DateOnly), effectiveFrom.Format(time.DateOnly)))
	}
	return newRule(id, deviceType, pincode, rates, effectiveFrom, &effectiveTo)
}

// RestoreRule reconstructs a rule from persistence.
func RestoreRule(
	id kernel.UUID,
	deviceType string,
	pincode kernel.Pincode,
	rates []Rate,
	effectiveFrom time.Time,
	effectiveTo *time.Time,
	status RuleStatus,
) (*Rule, error) {
	r, err := newRule(id, deviceType, pincode, rates, effectiveFrom, effectiveTo)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	return r, nil
}

func newRule(
	id kernel.UUID,
	deviceType string,
	pincode kernel.Pincode,
	rates []Rate,
	effectiveFrom time.Time,
	effectiveTo *time.Time,
) (*Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if deviceType == "" {
		return nil, errs.NewValueIsRequiredError("deviceType")
	}
	if err := pincode.Validate(); err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, errs.NewValueIsRequiredError("rates")
	}
	if effectiveFrom.IsZero() {
		return nil, errs.NewValueIsRequiredError("effectiveFrom")
	}

	r := &Rule{
		id:            id,
		deviceType:    deviceType,
		pincode:       pincode,
		rates:         append([]Rate(nil), rates...),
		effectiveFrom: effectiveFrom,
		status:        RuleStatusActive,
		isConstructed: true,
	}
	if effectiveTo != nil {
		to := *effectiveTo
		r.effectiveTo = &to
	}
	return r, nil
}

// Validate ensures the Rule instance was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// DeviceType returns the device-type code the rule is scoped to.
func (r *Rule) DeviceType() string {
	return r.deviceType
}

// Pincode returns the postal code the rule is scoped to.
func (r *Rule) Pincode() kernel.Pincode {
	return r.pincode
}

// Rates returns the rule's rate entries in their stored order.
func (r *Rule) Rates() []Rate {
	return append([]Rate(nil), r.rates...)
}

// RateFor returns the rate quoted in the given metric, if present.
func (r *Rule) RateFor(metric Metric) (Rate, bool) {
	for _, rate := range r.rates {
		if rate.Metric() == metric {
			return rate, true
		}
	}
	return Rate{}, false
}

// EffectiveFrom returns the start of the validity window.
func (r *Rule) EffectiveFrom() time.Time {
	return r.effectiveFrom
}

// EffectiveTo returns the end of the validity window, nil for a default rule.
func (r *Rule) EffectiveTo() *time.Time {
	if r.effectiveTo == nil {
		return nil
	}
	to := *r.effectiveTo
	return &to
}

// Status returns the rule status.
func (r *Rule) Status() RuleStatus {
	return r.status
}

// Deactivate withdraws the rule from resolution without deleting it.
func (r *Rule) Deactivate() {
	r.status = RuleStatusInactive
}

// IsDefault reports whether the rule is the open-ended default for its scope.
func (r *Rule) IsDefault() bool {
	return r.effectiveTo == nil
}

// IsActive reports whether the rule participates in resolution.
func (r *Rule) IsActive() bool {
	return r.status == RuleStatusActive
}

// Covers reports whether the rule's window contains the date, bounds
// included. A default rule covers every date from its start onward.
func (r *Rule) Covers(date time.Time) bool {
	if date.Before(r.effectiveFrom) {
		return false
	}
	if r.effectiveTo == nil {
		return true
	}
	return !date.After(*r.effectiveTo)
}

// SameScope reports whether two rules share (device type, pincode).
func (r *Rule) SameScope(other *Rule) bool {
	return other != nil && r.deviceType == other.deviceType && r.pincode == other.pincode
}

// OverlapsWindow reports whether two time-specific rules' windows share at
// least one date, bounds included. Returns false when either rule is a
// default rule; default rules do not conflict with bounded windows.
func (r *Rule) OverlapsWindow(other *Rule) bool {
	if other == nil || r.effectiveTo == nil || other.effectiveTo == nil {
		return false
	}
	return !r.effectiveFrom.After(*other.effectiveTo) && !other.effectiveFrom.After(*r.effectiveTo)
}
