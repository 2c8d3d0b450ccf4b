package commands

import (
	"context"

	"agrilease/internal/core/ports"
)

// RejectOrderCommandHandler handles order rejection. For Lease orders only
// an administrator may reject: the distributor is the requester there, not
// the handler, and cannot refuse their own request. For Rent orders only
// the assigned distributor may reject. The requester is notified after
// commit.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	auditLog   ports.AuditLog
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	auditLog ports.AuditLog,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		auditLog:   auditLog,
	}
}

// Handle processes the rejection command.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if err = authorizeHandlerAction(aggregate, cmd.ActorID(), cmd.ActorRole(), "reject order"); err != nil {
		return err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.Reject(cmd.Note()); err != nil {
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
		Action:     "reject",
		From:       fromStatus.String(),
		To:         aggregate.Status().String(),
		Note:       cmd.Note(),
	})
	h.notifier.Notify(ports.Notification{
		Event:       ports.EventOrderRejected,
		RecipientID: aggregate.RequesterID(),
		Payload: map[string]string{
			"orderId": aggregate.ID().String(),
			"note":    cmd.Note(),
		},
	})

	return nil
}
