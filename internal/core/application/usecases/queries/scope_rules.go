package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
)

// loadScopeRules reads every pricing rule for a (device type, pincode)
// scope, rates included, and restores them as domain rules.
func loadScopeRules(
	ctx context.Context,
	db *gorm.DB,
	deviceType string,
	pincode kernel.Pincode,
) ([]*pricing.Rule, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.effective_from,
			r.effective_to,
			r.status,
			t.metric,
			t.price_per_unit
		FROM pricing_rules r
		JOIN pricing_rates t ON t.rule_id = r.id
		WHERE r.device_type = ? AND r.pincode = ?
		ORDER BY r.id
	`, deviceType, pincode.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type ruleRow struct {
		id            kernel.UUID
		effectiveFrom time.Time
		effectiveTo   *time.Time
		status        pricing.RuleStatus
		rates         []pricing.Rate
	}

	byID := make(map[kernel.UUID]*ruleRow)
	ordered := make([]*ruleRow, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			effectiveFrom time.Time
			effectiveTo   *time.Time
			statusStr     string
			metricStr     string
			pricePerUnit  int64
		)

		if err = rows.Scan(&id, &effectiveFrom, &effectiveTo, &statusStr, &metricStr, &pricePerUnit); err != nil {
			return nil, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		metric, metricErr := pricing.MetricFromString(metricStr)
		if metricErr != nil {
			return nil, metricErr
		}
		rate, rateErr := pricing.NewRate(metric, pricePerUnit)
		if rateErr != nil {
			return nil, rateErr
		}

		row, ok := byID[ruleID]
		if !ok {
			status, statusErr := pricing.RuleStatusFromString(statusStr)
			if statusErr != nil {
				return nil, statusErr
			}
			row = &ruleRow{
				id:            ruleID,
				effectiveFrom: effectiveFrom,
				effectiveTo:   effectiveTo,
				status:        status,
			}
			byID[ruleID] = row
			ordered = append(ordered, row)
		}
		row.rates = append(row.rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	scopeRules := make([]*pricing.Rule, 0, len(ordered))
	for _, row := range ordered {
		rule, restoreErr := pricing.RestoreRule(row.id, deviceType, pincode, row.rates,
			row.effectiveFrom, row.effectiveTo, row.status)
		if restoreErr != nil {
			return nil, restoreErr
		}
		scopeRules = append(scopeRules, rule)
	}

	return scopeRules, nil
}
