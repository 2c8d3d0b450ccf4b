package commands

import (
	"context"
	"fmt"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/services"
	"agrilease/internal/pkg/errs"
)

// ChangeDeviceStatusCommandHandler handles device lifecycle changes.
// Moving a device to Live additionally requires a default pricing rule for
// its (device type, pincode) scope: a live device without pricing could
// never be discovered, so the gap is rejected up front.
type ChangeDeviceStatusCommandHandler struct {
	uowFactory DevicePricingUoWFactory
	resolver   services.PricingResolver
}

// NewChangeDeviceStatusCommandHandler creates a handler for device status
// changes.
func NewChangeDeviceStatusCommandHandler(uowFactory DevicePricingUoWFactory) ChangeDeviceStatusCommandHandler {
	return ChangeDeviceStatusCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewPricingResolver(),
	}
}

// Handle processes the status change command.
func (h ChangeDeviceStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeviceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != actor.RoleAdministrator {
		return errs.NewForbiddenError(cmd.ActorRole().String(), "change device status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deviceRepo := uow.DeviceRepository()

	aggregate, err := deviceRepo.Get(ctx, cmd.DeviceID())
	if err != nil {
		return err
	}

	if cmd.ToStatus() == device.StatusLive {
		rules, err := uow.PricingRuleRepository().GetAllByScope(ctx, aggregate.DeviceType(), aggregate.Pincode())
		if err != nil {
			return err
		}
		if _, ok := h.resolver.DefaultRule(rules); !ok {
			return errs.NewPreconditionFailedError(fmt.Sprintf(
				"no default pricing rule for %s/%s", aggregate.DeviceType(), aggregate.Pincode()))
		}
	}

	if err = aggregate.ChangeStatus(cmd.ToStatus()); err != nil {
		return err
	}

	if err = deviceRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
