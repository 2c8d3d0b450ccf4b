// Package postgres provides the GORM-based unit of work and repositories.
// A unit of work spans every aggregate mutated by one business operation:
// either all writes commit together or none do. Repositories obtained from
// an active unit of work share its transaction; outside a transaction they
// run against the main connection.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"agrilease/internal/adapters/out/postgres/devicerepo"
	"agrilease/internal/adapters/out/postgres/leaserepo"
	"agrilease/internal/adapters/out/postgres/orderrepo"
	"agrilease/internal/adapters/out/postgres/pricingrepo"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/ports"
)

// trackedAggregate records an aggregate mutated during the unit of work,
// available after commit for post-transaction processing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates unit of work instances backed by a shared
// GORM connection. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new unit of work ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories of every aggregate touched by a business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on a unit of work with an
// active transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Safe to call from a defer after
// Commit: without an active transaction it only reports
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DeviceRepository returns the device repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DeviceRepository() ports.DeviceRepository {
	return devicerepo.NewGormDeviceRepository(uow.conn(), uow)
}

// OrderRepository returns the order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// LeaseRepository returns the lease repository bound to the current
// transaction.
func (uow *GormUnitOfWork) LeaseRepository() ports.LeaseRepository {
	return leaserepo.NewGormLeaseRepository(uow.conn(), uow)
}

// PricingRuleRepository returns the pricing rule repository bound to the
// current transaction.
func (uow *GormUnitOfWork) PricingRuleRepository() ports.PricingRuleRepository {
	return pricingrepo.NewGormPricingRuleRepository(uow.conn(), uow)
}

// ThresholdConfigRepository returns the threshold config repository bound
// to the current transaction.
func (uow *GormUnitOfWork) ThresholdConfigRepository() ports.ThresholdConfigRepository {
	return pricingrepo.NewGormThresholdConfigRepository(uow.conn())
}

// TrackAggregate registers an aggregate mutated within this unit of work.
// Repository implementations call this on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
