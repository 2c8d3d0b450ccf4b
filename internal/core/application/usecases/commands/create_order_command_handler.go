package commands

import (
	"context"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/services"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order submission: validates the device
// is live, derives the order type through the configured policy, validates
// the device's lease state against that type while resolving the handler,
// and persists the order in InterestRaised status. The handler is notified
// after commit, best-effort.
type CreateOrderCommandHandler struct {
	uowFactory      OrderCreationUoWFactory
	orderTypePolicy services.OrderTypePolicy
	handlerResolver services.HandlerResolver
	notifier        ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order submission.
func NewCreateOrderCommandHandler(
	uowFactory OrderCreationUoWFactory,
	orderTypePolicy services.OrderTypePolicy,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		orderTypePolicy: orderTypePolicy,
		handlerResolver: services.NewHandlerResolver(),
		notifier:        notifier,
	}
}

// Handle processes the order submission command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	dev, err := uow.DeviceRepository().Get(ctx, cmd.DeviceID())
	if err != nil {
		return err
	}
	if dev.Status() != device.StatusLive {
		return errs.NewPreconditionFailedError("device is not live")
	}

	orderType, err := h.orderTypePolicy.DeriveType(services.OrderTypeRequest{
		RequesterRole: cmd.RequesterRole(),
		DeviceType:    dev.DeviceType(),
		Quantity:      cmd.Quantity(),
	})
	if err != nil {
		return err
	}

	var currentLease *lease.Lease
	if dev.IsLeased() {
		currentLease, err = uow.LeaseRepository().Get(ctx, *dev.CurrentLease())
		if err != nil {
			return err
		}
	}

	handler, err := h.handlerResolver.Resolve(orderType, dev, currentLease)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), orderType, cmd.DeviceID(), cmd.RequesterID(),
		handler, cmd.Quantity(), cmd.Period(), cmd.Note())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyHandler(aggregate)
	return nil
}

func (h CreateOrderCommandHandler) notifyHandler(aggregate *order.Order) {
	notification := ports.Notification{
		Event: ports.EventOrderCreated,
		Payload: map[string]string{
			"orderId":   aggregate.ID().String(),
			"orderType": aggregate.OrderType().String(),
			"deviceId":  aggregate.DeviceID().String(),
		},
	}

	switch aggregate.Handler().Kind() {
	case order.HandlerKindDistributor:
		if distributorID, ok := aggregate.Handler().DistributorID(); ok {
			notification.RecipientID = distributorID
		}
	default:
		notification.RecipientRole = actor.RoleAdministrator
	}

	h.notifier.Notify(notification)
}
