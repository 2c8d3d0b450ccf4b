package commands

import (
	"errors"
	"time"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

var ErrCreatePricingRuleCommandIsNotConstructed = errors.New(
	"CreatePricingRuleCommand must be created via NewCreatePricingRuleCommand constructor",
)

// CreatePricingRuleCommand represents an administrator creating a rate
// rule. A nil effectiveTo makes the rule the scope's default.
type CreatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID        kernel.UUID
	actorRole     actor.Role
	deviceType    string
	pincode       kernel.Pincode
	rates         []pricing.Rate
	effectiveFrom time.Time
	effectiveTo   *time.Time

	guard guard.ConstructorGuard
}

// NewCreatePricingRuleCommand creates a command to create a pricing rule.
func NewCreatePricingRuleCommand(
	ruleID kernel.UUID,
	actorRole actor.Role,
	deviceType string,
	pincode kernel.Pincode,
	rates []pricing.Rate,
	effectiveFrom time.Time,
	effectiveTo *time.Time,
) (CreatePricingRuleCommand, error) {
	cmd := CreatePricingRuleCommand{
		rates: append([]pricing.Rate(nil), rates...),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRuleID(ruleID),
		cmd.setActorRole(actorRole),
		cmd.setDeviceType(deviceType),
		cmd.setPincode(pincode),
		cmd.setWindow(effectiveFrom, effectiveTo),
	); err != nil {
		return CreatePricingRuleCommand{}, err
	}
	if len(rates) == 0 {
		return CreatePricingRuleCommand{}, errs.NewValueIsRequiredError("rates")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingRuleCommandIsNotConstructed)
}

// RuleID returns the identifier assigned to the new rule.
func (c CreatePricingRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

// ActorRole returns the caller's active role.
func (c CreatePricingRuleCommand) ActorRole() actor.Role {
	return c.actorRole
}

// DeviceType returns the scope's device-type code.
func (c CreatePricingRuleCommand) DeviceType() string {
	return c.deviceType
}

// Pincode returns the scope's postal code.
func (c CreatePricingRuleCommand) Pincode() kernel.Pincode {
	return c.pincode
}

// Rates returns the rule's rate entries.
func (c CreatePricingRuleCommand) Rates() []pricing.Rate {
	return append([]pricing.Rate(nil), c.rates...)
}

// EffectiveFrom returns the start of the validity window.
func (c CreatePricingRuleCommand) EffectiveFrom() time.Time {
	return c.effectiveFrom
}

// EffectiveTo returns the end of the validity window, nil for a default
// rule.
func (c CreatePricingRuleCommand) EffectiveTo() *time.Time {
	if c.effectiveTo == nil {
		return nil
	}
	to := *c.effectiveTo
	return &to
}

func (c *CreatePricingRuleCommand) setRuleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ruleID = id
	return nil
}

func (c *CreatePricingRuleCommand) setActorRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *CreatePricingRuleCommand) setDeviceType(deviceType string) error {
	if deviceType == "" {
		return errs.NewValueIsRequiredError("deviceType")
	}
	c.deviceType = deviceType
	return nil
}

func (c *CreatePricingRuleCommand) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	c.pincode = pincode
	return nil
}

func (c *CreatePricingRuleCommand) setWindow(from time.Time, to *time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("effectiveFrom")
	}
	c.effectiveFrom = from
	if to != nil {
		end := *to
		c.effectiveTo = &end
	}
	return nil
}
