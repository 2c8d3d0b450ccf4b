package commands

import (
	"context"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/domain/services"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

// CreateLeaseFromOrderCommandHandler converts an accepted Lease order into
// an active lease. Order, lease, and device are mutated in one unit of
// work: either all three reflect the new lease or none do. The device
// write is version-conditional, so two racing conversions for the same
// device cannot both succeed; the loser surfaces errs.ErrConflict.
type CreateLeaseFromOrderCommandHandler struct {
	uowFactory UoWFactory
	uploader   ports.Uploader
	notifier   ports.Notifier
	resolver   services.PricingResolver
}

// NewCreateLeaseFromOrderCommandHandler creates a handler for lease
// creation.
func NewCreateLeaseFromOrderCommandHandler(
	uowFactory UoWFactory,
	uploader ports.Uploader,
	notifier ports.Notifier,
) CreateLeaseFromOrderCommandHandler {
	return CreateLeaseFromOrderCommandHandler{
		uowFactory: uowFactory,
		uploader:   uploader,
		notifier:   notifier,
		resolver:   services.NewPricingResolver(),
	}
}

// Handle processes the lease creation command.
func (h CreateLeaseFromOrderCommandHandler) Handle(ctx context.Context, cmd CreateLeaseFromOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != actor.RoleAdministrator {
		return errs.NewForbiddenError(cmd.ActorRole().String(), "create lease")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deviceRepo := uow.DeviceRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.OrderType() != order.TypeLease {
		return errs.NewPreconditionFailedError("order is not a lease order")
	}
	if aggregate.Status() != order.StatusAccepted {
		return errs.NewPreconditionFailedError("order is not accepted")
	}

	dev, err := deviceRepo.Get(ctx, aggregate.DeviceID())
	if err != nil {
		return err
	}
	if dev.IsLeased() {
		return errs.NewPreconditionFailedError("device already leased")
	}

	commitment, err := commitmentFromQuantity(aggregate.Quantity())
	if err != nil {
		return err
	}

	estimatedPrice, err := h.estimatePrice(ctx, uow, dev.DeviceType(), dev.Pincode(), aggregate, commitment)
	if err != nil {
		return err
	}

	attachmentURLs, err := h.uploader.Upload(ctx, "lease", cmd.LeaseID(), cmd.Attachments())
	if err != nil {
		return err
	}

	newLease, err := lease.NewLease(cmd.LeaseID(), aggregate.ID(), dev.ID(), aggregate.RequesterID(),
		commitment, estimatedPrice, cmd.Deposit(), aggregate.Period(), attachmentURLs)
	if err != nil {
		return err
	}

	if err = uow.LeaseRepository().Add(ctx, newLease); err != nil {
		return err
	}

	if err = aggregate.AttachLease(newLease.ID()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = dev.AssignLease(newLease.ID()); err != nil {
		return err
	}
	if err = deviceRepo.Update(ctx, dev); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.Notification{
		Event:       ports.EventLeaseCreated,
		RecipientID: newLease.DistributorID(),
		Payload: map[string]string{
			"leaseId":  newLease.ID().String(),
			"orderId":  aggregate.ID().String(),
			"deviceId": dev.ID().String(),
		},
	})

	return nil
}

// commitmentFromQuantity derives the lease commitment from the requested
// quantity. Hours take precedence when both metrics were requested.
func commitmentFromQuantity(quantity order.Quantity) (lease.Commitment, error) {
	if hours := quantity.Hours(); hours != nil {
		return lease.NewCommitment(pricing.MetricHours, *hours)
	}
	if acres := quantity.Acres(); acres != nil {
		return lease.NewCommitment(pricing.MetricAcres, *acres)
	}
	return lease.Commitment{}, errs.NewValueIsRequiredError("quantity")
}

func (h CreateLeaseFromOrderCommandHandler) estimatePrice(
	ctx context.Context,
	uow UoW,
	deviceType string,
	pincode kernel.Pincode,
	aggregate *order.Order,
	commitment lease.Commitment,
) (int64, error) {
	rules, err := uow.PricingRuleRepository().GetAllByScope(ctx, deviceType, pincode)
	if err != nil {
		return 0, err
	}

	rule, ok := h.resolver.ActiveRule(rules, aggregate.Period().From())
	if !ok {
		return 0, errs.NewPreconditionFailedError("no pricing rule for device scope")
	}

	rate, ok := rule.RateFor(commitment.Metric())
	if !ok {
		return 0, errs.NewPreconditionFailedError("pricing rule has no rate for requested metric")
	}

	return rate.PricePerUnit() * int64(commitment.Quantity()), nil
}
