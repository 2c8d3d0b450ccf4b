package commands

import (
	"context"

	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/ports"
)

// ExpireLeasesCommandHandler completes active leases whose period has
// ended, releasing each device in the same transaction as its lease.
type ExpireLeasesCommandHandler struct {
	uowFactory LeaseDeviceUoWFactory
	notifier   ports.Notifier
}

// NewExpireLeasesCommandHandler creates a handler for the lease expiry
// sweep.
func NewExpireLeasesCommandHandler(uowFactory LeaseDeviceUoWFactory, notifier ports.Notifier) ExpireLeasesCommandHandler {
	return ExpireLeasesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the expiry sweep. Each overdue lease is ended in its
// own transaction so a failure on one lease does not hold up the rest.
func (h ExpireLeasesCommandHandler) Handle(ctx context.Context, cmd ExpireLeasesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	expired, err := uow.LeaseRepository().GetAllActiveExpiredBy(ctx, cmd.Now())
	if rbErr := uow.Rollback(ctx); rbErr != nil && err == nil {
		err = rbErr
	}
	if err != nil {
		return err
	}

	endHandler := NewEndLeaseCommandHandler(h.uowFactory, h.notifier)

	var firstErr error
	for _, l := range expired {
		endCmd, err := NewEndLeaseCommand(l.ID(), lease.StatusCompleted)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err = endHandler.Handle(ctx, endCmd); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
