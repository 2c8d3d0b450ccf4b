package commands

import (
	"context"

	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/ports"
)

// EndLeaseCommandHandler ends a lease and releases its device in the same
// transaction. The distributor is notified after commit.
type EndLeaseCommandHandler struct {
	uowFactory LeaseDeviceUoWFactory
	notifier   ports.Notifier
}

// NewEndLeaseCommandHandler creates a handler for lease endings.
func NewEndLeaseCommandHandler(uowFactory LeaseDeviceUoWFactory, notifier ports.Notifier) EndLeaseCommandHandler {
	return EndLeaseCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the end-lease command.
func (h EndLeaseCommandHandler) Handle(ctx context.Context, cmd EndLeaseCommand) error {
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

	leaseRepo := uow.LeaseRepository()
	deviceRepo := uow.DeviceRepository()

	aggregate, err := leaseRepo.Get(ctx, cmd.LeaseID())
	if err != nil {
		return err
	}

	if cmd.ToStatus() == lease.StatusCompleted {
		err = aggregate.Complete()
	} else {
		err = aggregate.Terminate()
	}
	if err != nil {
		return err
	}

	if err = leaseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	dev, err := deviceRepo.Get(ctx, aggregate.DeviceID())
	if err != nil {
		return err
	}
	dev.ReleaseLease()
	if err = deviceRepo.Update(ctx, dev); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.Notification{
		Event:       ports.EventLeaseEnded,
		RecipientID: aggregate.DistributorID(),
		Payload: map[string]string{
			"leaseId": aggregate.ID().String(),
			"status":  aggregate.Status().String(),
		},
	})

	return nil
}
