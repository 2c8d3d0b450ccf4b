package commands

import (
	"context"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/pkg/errs"
)

// CreateDeviceCommandHandler handles device onboarding. Only an
// administrator may onboard devices.
type CreateDeviceCommandHandler struct {
	uowFactory DeviceUoWFactory
}

// NewCreateDeviceCommandHandler creates a handler for device onboarding.
func NewCreateDeviceCommandHandler(uowFactory DeviceUoWFactory) CreateDeviceCommandHandler {
	return CreateDeviceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the device onboarding command. The device is persisted
// in Draft status.
func (h CreateDeviceCommandHandler) Handle(ctx context.Context, cmd CreateDeviceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != actor.RoleAdministrator {
		return errs.NewForbiddenError(cmd.ActorRole().String(), "create device")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := device.NewDevice(cmd.DeviceID(), cmd.DeviceType(), cmd.Location(), cmd.Pincode())
	if err != nil {
		return err
	}

	if err = uow.DeviceRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
