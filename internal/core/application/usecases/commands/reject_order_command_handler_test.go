package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrilease/internal/core/application/usecases/commands"
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

func TestRejectOrderCommandHandler_Handle_AdministratorRejectsLeaseOrder(t *testing.T) {
	ctx := context.Background()

	aggregate := testOrder(t, order.TypeLease, order.StatusUnderReview, order.AdministratorHandler())

	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), testUUID(t), actor.RoleAdministrator,
		"device reserved for maintenance")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	auditLog := new(MockAuditLog)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	auditLog.On("LogEvent", mock.AnythingOfType("ports.AuditEntry")).Once()
	notifier.On("Notify", mock.AnythingOfType("ports.Notification")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, notifier, auditLog)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusRejected, aggregate.Status())

	entry := auditLog.Calls[0].Arguments[0].(ports.AuditEntry)
	assert.Equal(t, "reject", entry.Action)
	assert.Equal(t, order.StatusUnderReview.String(), entry.From)
	assert.Equal(t, order.StatusRejected.String(), entry.To)

	notification := notifier.Calls[0].Arguments[0].(ports.Notification)
	assert.Equal(t, ports.EventOrderRejected, notification.Event)
	assert.True(t, notification.RecipientID.IsEqual(aggregate.RequesterID()))
}

func TestRejectOrderCommandHandler_Handle_DistributorRejectsOwnRentOrder(t *testing.T) {
	ctx := context.Background()

	distributorID := testUUID(t)
	handlerDesc, err := order.DistributorHandler(distributorID)
	require.NoError(t, err)
	aggregate := testOrder(t, order.TypeRent, order.StatusInterestRaised, handlerDesc)

	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), distributorID, actor.RoleDistributor, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	auditLog := new(MockAuditLog)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	auditLog.On("LogEvent", mock.AnythingOfType("ports.AuditEntry")).Once()
	notifier.On("Notify", mock.AnythingOfType("ports.Notification")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, notifier, auditLog)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusRejected, aggregate.Status())
}

func TestRejectOrderCommandHandler_Handle_ForbiddenForOtherDistributor(t *testing.T) {
	ctx := context.Background()

	handlerDesc, err := order.DistributorHandler(testUUID(t))
	require.NoError(t, err)
	aggregate := testOrder(t, order.TypeRent, order.StatusInterestRaised, handlerDesc)

	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), testUUID(t), actor.RoleDistributor, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, new(MockNotifier), new(MockAuditLog))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.StatusInterestRaised, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestRejectOrderCommandHandler_Handle_InvalidFromAccepted(t *testing.T) {
	ctx := context.Background()

	aggregate := testOrder(t, order.TypeLease, order.StatusAccepted, order.AdministratorHandler())

	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), testUUID(t), actor.RoleAdministrator, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, new(MockNotifier), new(MockAuditLog))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update")
}
