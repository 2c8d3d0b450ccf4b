package commands

import (
	"context"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/domain/services"
	"agrilease/internal/pkg/errs"
)

// CreatePricingRuleCommandHandler handles pricing rule creation with
// conflict detection. A duplicate default rule for the scope blocks
// creation with errs.ErrConflict. Overlapping time-specific windows are
// returned as warnings and the rule is still created: seasonal pricing is
// allowed to overlap on purpose.
type CreatePricingRuleCommandHandler struct {
	uowFactory PricingUoWFactory
	resolver   services.PricingResolver
}

// NewCreatePricingRuleCommandHandler creates a handler for pricing rule
// creation.
func NewCreatePricingRuleCommandHandler(uowFactory PricingUoWFactory) CreatePricingRuleCommandHandler {
	return CreatePricingRuleCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewPricingResolver(),
	}
}

// Handle processes the rule creation command. Non-blocking conflicts are
// returned alongside a nil error.
func (h CreatePricingRuleCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePricingRuleCommand,
) ([]services.RuleConflict, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.ActorRole() != actor.RoleAdministrator {
		return nil, errs.NewForbiddenError(cmd.ActorRole().String(), "create pricing rule")
	}

	candidate, err := buildRule(cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.PricingRuleRepository()

	existing, err := ruleRepo.GetAllByScope(ctx, cmd.DeviceType(), cmd.Pincode())
	if err != nil {
		return nil, err
	}

	conflicts := h.resolver.CheckConflicts(candidate, existing)
	if h.resolver.HasBlockingConflict(conflicts) {
		return conflicts, errs.NewConflictError("pricingRule", candidate.ID().String())
	}

	if err = ruleRepo.Add(ctx, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return conflicts, nil
}

func buildRule(cmd CreatePricingRuleCommand) (*pricing.Rule, error) {
	if to := cmd.EffectiveTo(); to != nil {
		return pricing.NewTimeSpecificRule(cmd.RuleID(), cmd.DeviceType(), cmd.Pincode(),
			cmd.Rates(), cmd.EffectiveFrom(), *to)
	}
	return pricing.NewDefaultRule(cmd.RuleID(), cmd.DeviceType(), cmd.Pincode(),
		cmd.Rates(), cmd.EffectiveFrom())
}
