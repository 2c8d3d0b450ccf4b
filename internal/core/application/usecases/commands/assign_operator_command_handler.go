package commands

import (
	"context"

	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/ports"
)

// AssignOperatorCommandHandler handles operator assignment on a lease.
// The aggregate enforces the single-primary rule; the operator is notified
// after commit.
type AssignOperatorCommandHandler struct {
	uowFactory LeaseUoWFactory
	notifier   ports.Notifier
}

// NewAssignOperatorCommandHandler creates a handler for operator
// assignment.
func NewAssignOperatorCommandHandler(uowFactory LeaseUoWFactory, notifier ports.Notifier) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
func (h AssignOperatorCommandHandler) Handle(ctx context.Context, cmd AssignOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	assignment, err := lease.NewOperatorAssignment(cmd.OperatorID(), cmd.Role(), cmd.AssignedAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	leaseRepo := uow.LeaseRepository()

	aggregate, err := leaseRepo.Get(ctx, cmd.LeaseID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignOperator(assignment); err != nil {
		return err
	}

	if err = leaseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.Notification{
		Event:       ports.EventOperatorAssigned,
		RecipientID: cmd.OperatorID(),
		Payload: map[string]string{
			"leaseId": aggregate.ID().String(),
			"role":    cmd.Role().String(),
		},
	})

	return nil
}
