package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrilease/internal/core/application/usecases/commands"
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/pkg/errs"
)

func TestChangeDeviceStatusCommandHandler_Handle_GoLiveWithDefaultPricing(t *testing.T) {
	ctx := context.Background()

	aggregate := testDevice(t, device.StatusOnboarded, nil)

	cmd, err := commands.NewChangeDeviceStatusCommand(aggregate.ID(), actor.RoleAdministrator, device.StatusLive)
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	ruleRepo := new(MockPricingRuleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeviceRepository").Return(deviceRepo).Once(),
		deviceRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PricingRuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("GetAllByScope", ctx, "tractor", testPincode(t)).
			Return([]*pricing.Rule{testDefaultRule(t)}, nil).
			Once(),
		deviceRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDevicePricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeDeviceStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, device.StatusLive, aggregate.Status())

	uow.AssertExpectations(t)
}

func TestChangeDeviceStatusCommandHandler_Handle_GoLiveWithoutDefaultPricing(t *testing.T) {
	ctx := context.Background()

	aggregate := testDevice(t, device.StatusOnboarded, nil)

	cmd, err := commands.NewChangeDeviceStatusCommand(aggregate.ID(), actor.RoleAdministrator, device.StatusLive)
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	ruleRepo := new(MockPricingRuleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeviceRepository").Return(deviceRepo).Once()
	deviceRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("PricingRuleRepository").Return(ruleRepo).Once()
	ruleRepo.On("GetAllByScope", ctx, "tractor", testPincode(t)).
		Return([]*pricing.Rule{}, nil).
		Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDevicePricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeDeviceStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, device.StatusOnboarded, aggregate.Status())
	deviceRepo.AssertNotCalled(t, "Update")
}

func TestChangeDeviceStatusCommandHandler_Handle_MaintenanceSkipsPricingCheck(t *testing.T) {
	ctx := context.Background()

	aggregate := testDevice(t, device.StatusLive, nil)

	cmd, err := commands.NewChangeDeviceStatusCommand(aggregate.ID(), actor.RoleAdministrator,
		device.StatusUnderMaintenance)
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeviceRepository").Return(deviceRepo).Once()
	deviceRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	deviceRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDevicePricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeDeviceStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, device.StatusUnderMaintenance, aggregate.Status())
	uow.AssertNotCalled(t, "PricingRuleRepository")
}

func TestChangeDeviceStatusCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewChangeDeviceStatusCommand(testUUID(t), actor.RoleFarmer, device.StatusLive)
	require.NoError(t, err)

	factory := new(MockDevicePricingUoWFactory)

	handler := commands.NewChangeDeviceStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
