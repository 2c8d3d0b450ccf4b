package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"agrilease/internal/core/domain/services"
	"agrilease/internal/pkg/errs"
)

// GetActivePricingQueryHandler resolves the active pricing rule for a
// scope from the database.
type GetActivePricingQueryHandler struct {
	db       *gorm.DB
	resolver services.PricingResolver
}

// NewGetActivePricingQueryHandler creates a handler for active pricing
// queries.
func NewGetActivePricingQueryHandler(db *gorm.DB) GetActivePricingQueryHandler {
	return GetActivePricingQueryHandler{
		db:       db,
		resolver: services.NewPricingResolver(),
	}
}

// Handle executes the query. Returns ObjectNotFound when no rule covers
// the queried date.
func (h GetActivePricingQueryHandler) Handle(
	ctx context.Context,
	query GetActivePricingQuery,
) (GetActivePricingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActivePricingQueryResponse{}, err
	}

	scopeRules, err := loadScopeRules(ctx, h.db, query.DeviceType(), query.Pincode())
	if err != nil {
		return GetActivePricingQueryResponse{}, err
	}

	rule, ok := h.resolver.ActiveRule(scopeRules, query.AsOf())
	if !ok {
		scope := fmt.Sprintf("%s/%s", query.DeviceType(), query.Pincode())
		return GetActivePricingQueryResponse{}, errs.NewObjectNotFoundError("pricingRule", scope)
	}

	rates := make([]RateResponse, 0, len(rule.Rates()))
	for _, rate := range rule.Rates() {
		rates = append(rates, RateResponse{
			Metric:       rate.Metric().String(),
			PricePerUnit: rate.PricePerUnit(),
		})
	}

	return GetActivePricingQueryResponse{
		RuleID:        rule.ID(),
		IsDefault:     rule.IsDefault(),
		EffectiveFrom: rule.EffectiveFrom(),
		EffectiveTo:   rule.EffectiveTo(),
		Rates:         rates,
	}, nil
}
