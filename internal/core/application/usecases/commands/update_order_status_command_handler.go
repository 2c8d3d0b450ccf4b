package commands

import (
	"context"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order status transitions. The
// caller must be the order's resolved handler: any administrator for Lease
// orders, the one assigned distributor for Rent orders. The transition is
// audited and announced after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	auditLog   ports.AuditLog
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	auditLog ports.AuditLog,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		auditLog:   auditLog,
	}
}

// Handle processes the transition command.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = authorizeHandlerAction(aggregate, cmd.ActorID(), cmd.ActorRole(), "update order status"); err != nil {
		return err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.ToStatus(), cmd.Note()); err != nil {
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
		Action:     "status_change",
		From:       fromStatus.String(),
		To:         aggregate.Status().String(),
		Note:       cmd.Note(),
	})
	h.notifier.Notify(ports.Notification{
		Event:       ports.EventOrderStatusChanged,
		RecipientID: aggregate.RequesterID(),
		Payload: map[string]string{
			"orderId": aggregate.ID().String(),
			"from":    fromStatus.String(),
			"to":      aggregate.Status().String(),
		},
	})

	return nil
}

// authorizeHandlerAction checks that the caller is the order's resolved
// handler.
func authorizeHandlerAction(aggregate *order.Order, actorID kernel.UUID, actorRole actor.Role, action string) error {
	switch aggregate.Handler().Kind() {
	case order.HandlerKindAdministrator:
		if actorRole != actor.RoleAdministrator {
			return errs.NewForbiddenError(actorID.String(), action)
		}
	case order.HandlerKindDistributor:
		distributorID, ok := aggregate.Handler().DistributorID()
		if !ok || !distributorID.IsEqual(actorID) {
			return errs.NewForbiddenError(actorID.String(), action)
		}
	default:
		return errs.NewForbiddenError(actorID.String(), action)
	}
	return nil
}
