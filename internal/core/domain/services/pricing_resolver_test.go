package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustUUID(t *testing.T) kernel.UUID {
	t.Helper()
	return kernel.NewUUID()
}

func mustPincode(t *testing.T, s string) kernel.Pincode {
	t.Helper()
	p, err := kernel.NewPincode(s)
	require.NoError(t, err)
	return p
}

func testRates(t *testing.T, price int64) []pricing.Rate {
	t.Helper()
	rate, err := pricing.NewRate(pricing.MetricHours, price)
	require.NoError(t, err)
	return []pricing.Rate{rate}
}

func defaultRule(t *testing.T, deviceType, pincode string, from time.Time) *pricing.Rule {
	t.Helper()
	rule, err := pricing.NewDefaultRule(mustUUID(t), deviceType, mustPincode(t, pincode), testRates(t, 45000), from)
	require.NoError(t, err)
	return rule
}

func boundedRule(t *testing.T, deviceType, pincode string, from, to time.Time) *pricing.Rule {
	t.Helper()
	rule, err := pricing.NewTimeSpecificRule(mustUUID(t), deviceType, mustPincode(t, pincode),
		testRates(t, 60000), from, to)
	require.NoError(t, err)
	return rule
}

func Test_PricingResolver_DefaultRule(t *testing.T) {
	resolver := NewPricingResolver()

	open := defaultRule(t, "tractor", "411001", date(2026, 1, 1))
	bounded := boundedRule(t, "tractor", "411001", date(2026, 6, 1), date(2026, 6, 30))

	got, ok := resolver.DefaultRule([]*pricing.Rule{bounded, open})
	require.True(t, ok)
	assert.True(t, got.ID().IsEqual(open.ID()))

	t.Run("inactive default is skipped", func(t *testing.T) {
		open.Deactivate()
		_, ok := resolver.DefaultRule([]*pricing.Rule{bounded, open})
		assert.False(t, ok)
	})
}

func Test_PricingResolver_ActiveRule_TimeSpecificWins(t *testing.T) {
	resolver := NewPricingResolver()

	open := defaultRule(t, "tractor", "411001", date(2026, 1, 1))
	june := boundedRule(t, "tractor", "411001", date(2026, 6, 1), date(2026, 6, 30))
	rules := []*pricing.Rule{open, june}

	t.Run("date inside the window resolves the bounded rule", func(t *testing.T) {
		got, ok := resolver.ActiveRule(rules, date(2026, 6, 15))
		require.True(t, ok)
		assert.True(t, got.ID().IsEqual(june.ID()))
	})

	t.Run("date outside the window falls back to the default", func(t *testing.T) {
		got, ok := resolver.ActiveRule(rules, date(2026, 8, 1))
		require.True(t, ok)
		assert.True(t, got.ID().IsEqual(open.ID()))
	})

	t.Run("no rule resolves when neither applies", func(t *testing.T) {
		_, ok := resolver.ActiveRule(nil, date(2026, 8, 1))
		assert.False(t, ok)
	})
}

func Test_PricingResolver_TimeSpecificRules(t *testing.T) {
	resolver := NewPricingResolver()

	june := boundedRule(t, "tractor", "411001", date(2026, 6, 1), date(2026, 6, 30))
	july := boundedRule(t, "tractor", "411001", date(2026, 7, 1), date(2026, 7, 31))
	open := defaultRule(t, "tractor", "411001", date(2026, 1, 1))

	covering := resolver.TimeSpecificRules([]*pricing.Rule{june, july, open}, date(2026, 6, 10))
	require.Len(t, covering, 1)
	assert.True(t, covering[0].ID().IsEqual(june.ID()))
}

func Test_PricingResolver_CheckConflicts_DuplicateDefaultBlocks(t *testing.T) {
	resolver := NewPricingResolver()

	existing := defaultRule(t, "tractor", "411001", date(2026, 1, 1))
	candidate := defaultRule(t, "tractor", "411001", date(2026, 3, 1))

	conflicts := resolver.CheckConflicts(candidate, []*pricing.Rule{existing})
	require.Len(t, conflicts, 1)
	assert.True(t, conflicts[0].Blocking)
	assert.Equal(t, existing.ID().String(), conflicts[0].ExistingRuleID)
	assert.True(t, resolver.HasBlockingConflict(conflicts))
}

func Test_PricingResolver_CheckConflicts_OverlapWarnsOnly(t *testing.T) {
	resolver := NewPricingResolver()

	existing := boundedRule(t, "tractor", "411001", date(2026, 6, 1), date(2026, 6, 30))
	candidate := boundedRule(t, "tractor", "411001", date(2026, 6, 15), date(2026, 7, 15))

	conflicts := resolver.CheckConflicts(candidate, []*pricing.Rule{existing})
	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].Blocking)
	assert.False(t, resolver.HasBlockingConflict(conflicts))
}

func Test_PricingResolver_CheckConflicts_ScopeAndStatusIgnored(t *testing.T) {
	resolver := NewPricingResolver()
	candidate := defaultRule(t, "tractor", "411001", date(2026, 1, 1))

	t.Run("other scope does not conflict", func(t *testing.T) {
		otherPincode := defaultRule(t, "tractor", "422001", date(2026, 1, 1))
		otherType := defaultRule(t, "harvester", "411001", date(2026, 1, 1))
		assert.Empty(t, resolver.CheckConflicts(candidate, []*pricing.Rule{otherPincode, otherType}))
	})

	t.Run("inactive rule does not conflict", func(t *testing.T) {
		inactive := defaultRule(t, "tractor", "411001", date(2026, 1, 1))
		inactive.Deactivate()
		assert.Empty(t, resolver.CheckConflicts(candidate, []*pricing.Rule{inactive}))
	})

	t.Run("default candidate does not conflict with bounded rules", func(t *testing.T) {
		bounded := boundedRule(t, "tractor", "411001", date(2026, 6, 1), date(2026, 6, 30))
		assert.Empty(t, resolver.CheckConflicts(candidate, []*pricing.Rule{bounded}))
	})
}
