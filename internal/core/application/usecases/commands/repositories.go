// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, then best-effort side effects
// after commit.
package commands

import (
	"context"

	"agrilease/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest shape covering the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeviceRepoFactory provides access to the device repository within a
	// transaction.
	DeviceRepoFactory interface {
		DeviceRepository() ports.DeviceRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LeaseRepoFactory provides access to the lease repository within a
	// transaction.
	LeaseRepoFactory interface {
		LeaseRepository() ports.LeaseRepository
	}

	// PricingRuleRepoFactory provides access to the pricing rule
	// repository within a transaction.
	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// DeviceUoW manages transactions for device-only operations.
	DeviceUoW interface {
		TxManager
		DeviceRepoFactory
	}

	// DeviceUoWFactory creates new device unit of work instances.
	DeviceUoWFactory interface {
		Create() DeviceUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LeaseUoW manages transactions for lease-only operations.
	LeaseUoW interface {
		TxManager
		LeaseRepoFactory
	}

	// LeaseUoWFactory creates new lease unit of work instances.
	LeaseUoWFactory interface {
		Create() LeaseUoW
	}

	// PricingUoW manages transactions for pricing-rule operations.
	PricingUoW interface {
		TxManager
		PricingRuleRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// DevicePricingUoW serves device status changes, which consult the
	// pricing rules of the device's scope before a device may go live.
	DevicePricingUoW interface {
		TxManager
		DeviceRepoFactory
		PricingRuleRepoFactory
	}

	// DevicePricingUoWFactory creates new device+pricing unit of work
	// instances.
	DevicePricingUoWFactory interface {
		Create() DevicePricingUoW
	}

	// OrderCreationUoW serves order creation, which validates the device,
	// loads its current lease for handler resolution, and persists the
	// order.
	OrderCreationUoW interface {
		TxManager
		DeviceRepoFactory
		OrderRepoFactory
		LeaseRepoFactory
	}

	// OrderCreationUoWFactory creates new order creation unit of work
	// instances.
	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// LeaseDeviceUoW serves lease endings, which must release the device
	// in the same transaction.
	LeaseDeviceUoW interface {
		TxManager
		LeaseRepoFactory
		DeviceRepoFactory
	}

	// LeaseDeviceUoWFactory creates new lease+device unit of work
	// instances.
	LeaseDeviceUoWFactory interface {
		Create() LeaseDeviceUoW
	}

	// UoW manages transactions across order, device, lease, and pricing
	// aggregates. Used by lease creation, which must leave all three
	// entities mutually consistent or untouched.
	UoW interface {
		TxManager
		DeviceRepoFactory
		OrderRepoFactory
		LeaseRepoFactory
		PricingRuleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
