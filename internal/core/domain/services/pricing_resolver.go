package services

import (
	"fmt"
	"time"

	"agrilease/internal/core/domain/model/pricing"
)

// RuleConflict describes a collision between a candidate pricing rule and
// an existing rule in the same (device type, pincode) scope.
type RuleConflict struct {
	// ExistingRuleID identifies the rule the candidate collides with.
	ExistingRuleID string

	// Blocking is true for a duplicate default rule. Overlapping
	// time-specific windows are reported but do not block creation;
	// seasonal pricing is allowed to overlap on purpose.
	Blocking bool

	// Reason is a human-readable description of the collision.
	Reason string
}

// PricingResolver resolves the applicable rate rule for a scope and date,
// and detects rule conflicts at creation time. It is a pure service: the
// caller fetches the scope's rules, the resolver only inspects them.
type PricingResolver struct{}

// NewPricingResolver creates a new PricingResolver instance.
func NewPricingResolver() PricingResolver {
	return PricingResolver{}
}

// DefaultRule returns the scope's open-ended active rule, if present. At
// most one exists per scope; uniqueness is enforced at creation time via
// CheckConflicts, not re-checked here.
func (r PricingResolver) DefaultRule(rules []*pricing.Rule) (*pricing.Rule, bool) {
	for _, rule := range rules {
		if rule.IsActive() && rule.IsDefault() {
			return rule, true
		}
	}
	return nil, false
}

// TimeSpecificRules returns the active bounded rules whose windows cover
// the date, in the order they were provided.
func (r PricingResolver) TimeSpecificRules(rules []*pricing.Rule, date time.Time) []*pricing.Rule {
	var covering []*pricing.Rule
	for _, rule := range rules {
		if rule.IsActive() && !rule.IsDefault() && rule.Covers(date) {
			covering = append(covering, rule)
		}
	}
	return covering
}

// ActiveRule resolves the rule in force for the date: the first
// time-specific rule covering it wins, the default rule is the fallback,
// and absence of both means no pricing.
func (r PricingResolver) ActiveRule(rules []*pricing.Rule, date time.Time) (*pricing.Rule, bool) {
	if covering := r.TimeSpecificRules(rules, date); len(covering) > 0 {
		return covering[0], true
	}
	return r.DefaultRule(rules)
}

// CheckConflicts compares a candidate rule against the existing rules of
// its scope. A candidate default rule conflicts with an existing default
// rule, and that conflict blocks creation. A candidate time-specific rule
// conflicts with any active time-specific rule whose window overlaps; those
// conflicts are reported as warnings only. Rules outside the candidate's
// scope are ignored.
func (r PricingResolver) CheckConflicts(candidate *pricing.Rule, existing []*pricing.Rule) []RuleConflict {
	var conflicts []RuleConflict

	for _, rule := range existing {
		if !candidate.SameScope(rule) || !rule.IsActive() {
			continue
		}

		if candidate.IsDefault() {
			if rule.IsDefault() {
				conflicts = append(conflicts, RuleConflict{
					ExistingRuleID: rule.ID().String(),
					Blocking:       true,
					Reason: fmt.Sprintf("default rule already exists for %s/%s",
						candidate.DeviceType(), candidate.Pincode()),
				})
			}
			continue
		}

		if candidate.OverlapsWindow(rule) {
			conflicts = append(conflicts, RuleConflict{
				ExistingRuleID: rule.ID().String(),
				Blocking:       false,
				Reason: fmt.Sprintf("window overlaps rule effective %s to %s",
					rule.EffectiveFrom().Format(time.DateOnly),
					rule.EffectiveTo().Format(time.DateOnly)),
			})
		}
	}

	return conflicts
}

// HasBlockingConflict reports whether any detected conflict forbids
// creating the candidate rule.
func (r PricingResolver) HasBlockingConflict(conflicts []RuleConflict) bool {
	for _, c := range conflicts {
		if c.Blocking {
			return true
		}
	}
	return false
}
