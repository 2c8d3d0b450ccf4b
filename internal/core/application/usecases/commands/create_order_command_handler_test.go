package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrilease/internal/core/application/usecases/commands"
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/services"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_LeaseOrderSuccess(t *testing.T) {
	ctx := context.Background()

	dev := testDevice(t, device.StatusLive, nil)
	cmd, err := commands.NewCreateOrderCommand(testUUID(t), dev.ID(), testUUID(t),
		actor.RoleDistributor, testQuantity(t, 400), testPeriod(t), "")
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeviceRepository").Return(deviceRepo).Once(),
		deviceRepo.On("Get", ctx, dev.ID()).Return(dev, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Notify", mock.AnythingOfType("ports.Notification")).Once()

	factory := new(MockOrderCreationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.TypeLease, addedOrder.OrderType())
	assert.Equal(t, order.StatusInterestRaised, addedOrder.Status())
	assert.Equal(t, order.HandlerKindAdministrator, addedOrder.Handler().Kind())

	notification := notifier.Calls[0].Arguments[0].(ports.Notification)
	assert.Equal(t, ports.EventOrderCreated, notification.Event)
	assert.Equal(t, actor.RoleAdministrator, notification.RecipientRole)

	uow.AssertExpectations(t)
	deviceRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RentOrderSuccess(t *testing.T) {
	ctx := context.Background()

	currentLease := testLease(t)
	leaseID := currentLease.ID()
	dev := testDevice(t, device.StatusLive, &leaseID)

	cmd, err := commands.NewCreateOrderCommand(testUUID(t), dev.ID(), testUUID(t),
		actor.RoleFarmer, testQuantity(t, 40), testPeriod(t), "")
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	orderRepo := new(MockOrderRepository)
	leaseRepo := new(MockLeaseRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeviceRepository").Return(deviceRepo).Once(),
		deviceRepo.On("Get", ctx, dev.ID()).Return(dev, nil).Once(),
		uow.On("LeaseRepository").Return(leaseRepo).Once(),
		leaseRepo.On("Get", ctx, leaseID).Return(currentLease, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Notify", mock.AnythingOfType("ports.Notification")).Once()

	factory := new(MockOrderCreationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.TypeRent, addedOrder.OrderType())
	assert.Equal(t, order.HandlerKindDistributor, addedOrder.Handler().Kind())

	distributorID, ok := addedOrder.Handler().DistributorID()
	require.True(t, ok)
	assert.True(t, distributorID.IsEqual(currentLease.DistributorID()))

	notification := notifier.Calls[0].Arguments[0].(ports.Notification)
	assert.True(t, notification.RecipientID.IsEqual(currentLease.DistributorID()))
}

func TestCreateOrderCommandHandler_Handle_DeviceNotLive(t *testing.T) {
	ctx := context.Background()

	dev := testDevice(t, device.StatusUnderMaintenance, nil)
	cmd, err := commands.NewCreateOrderCommand(testUUID(t), dev.ID(), testUUID(t),
		actor.RoleDistributor, testQuantity(t, 400), testPeriod(t), "")
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeviceRepository").Return(deviceRepo).Once(),
		deviceRepo.On("Get", ctx, dev.ID()).Return(dev, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCreationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	notifier.AssertNotCalled(t, "Notify")
}

func TestCreateOrderCommandHandler_Handle_LeaseOrderOnLeasedDevice(t *testing.T) {
	ctx := context.Background()

	currentLease := testLease(t)
	leaseID := currentLease.ID()
	dev := testDevice(t, device.StatusLive, &leaseID)

	cmd, err := commands.NewCreateOrderCommand(testUUID(t), dev.ID(), testUUID(t),
		actor.RoleDistributor, testQuantity(t, 400), testPeriod(t), "")
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	leaseRepo := new(MockLeaseRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeviceRepository").Return(deviceRepo).Once(),
		deviceRepo.On("Get", ctx, dev.ID()).Return(dev, nil).Once(),
		uow.On("LeaseRepository").Return(leaseRepo).Once(),
		leaseRepo.On("Get", ctx, leaseID).Return(currentLease, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCreationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrDeviceAlreadyLeased)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestCreateOrderCommandHandler_Handle_MissingLeaseRecord(t *testing.T) {
	ctx := context.Background()

	leaseID := testUUID(t)
	dev := testDevice(t, device.StatusLive, &leaseID)

	cmd, err := commands.NewCreateOrderCommand(testUUID(t), dev.ID(), testUUID(t),
		actor.RoleFarmer, testQuantity(t, 40), testPeriod(t), "")
	require.NoError(t, err)

	deviceRepo := new(MockDeviceRepository)
	leaseRepo := new(MockLeaseRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeviceRepository").Return(deviceRepo).Once(),
		deviceRepo.On("Get", ctx, dev.ID()).Return(dev, nil).Once(),
		uow.On("LeaseRepository").Return(leaseRepo).Once(),
		leaseRepo.On("Get", ctx, leaseID).
			Return(nil, errs.NewObjectNotFoundError("leaseID", leaseID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCreationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()

	factory := new(MockOrderCreationUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), notifier)

	err := handler.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()

	dev := testDevice(t, device.StatusLive, nil)
	cmd, err := commands.NewCreateOrderCommand(testUUID(t), dev.ID(), testUUID(t),
		actor.RoleDistributor, testQuantity(t, 400), testPeriod(t), "")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderCreationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewRoleBasedPolicy(), new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
