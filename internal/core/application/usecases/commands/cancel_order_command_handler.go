package commands

import (
	"context"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

// CancelOrderCommandHandler handles requester cancellations. Only the
// original requester may cancel, and only while the order is still in
// InterestRaised. The handler is notified after commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	auditLog   ports.AuditLog
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	auditLog ports.AuditLog,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		auditLog:   auditLog,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.RequesterID().IsEqual(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "cancel order")
	}

	fromStatus := aggregate.Status()
	if err = aggregate.Cancel(cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.auditLog.LogEvent(ports.AuditEntry{
		EntityType: "ORDER",
		EntityID:   aggregate.ID(),
		Action:     "cancel",
		From:       fromStatus.String(),
		To:         aggregate.Status().String(),
		Note:       cmd.Note(),
	})
	h.notifyOrderHandler(aggregate, ports.EventOrderCancelled)

	return nil
}

func (h CancelOrderCommandHandler) notifyOrderHandler(aggregate *order.Order, event ports.NotificationEvent) {
	notification := ports.Notification{
		Event: event,
		Payload: map[string]string{
			"orderId": aggregate.ID().String(),
		},
	}

	if distributorID, ok := aggregate.Handler().DistributorID(); ok {
		notification.RecipientID = distributorID
	} else {
		notification.RecipientRole = actor.RoleAdministrator
	}

	h.notifier.Notify(notification)
}
