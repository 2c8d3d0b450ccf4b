package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "agrilease/internal/adapters/out/postgres"
	"agrilease/internal/adapters/out/postgres/devicerepo"
	"agrilease/internal/adapters/out/postgres/leaserepo"
	"agrilease/internal/adapters/out/postgres/orderrepo"
	"agrilease/internal/adapters/out/postgres/pricingrepo"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all
// tests and migrates the schema used by the unit of work repositories.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&devicerepo.DeviceDTO{},
		&orderrepo.OrderDTO{},
		&leaserepo.LeaseDTO{},
		&leaserepo.OperatorDTO{},
		&pricingrepo.PricingRuleDTO{},
		&pricingrepo.RateDTO{},
		&pricingrepo.ThresholdConfigDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE devices, orders, leases, lease_operators, pricing_rules, pricing_rates, threshold_configs",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work
// instances with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DeviceRepository(), "First instance should provide device repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.LeaseRepository(), "Second instance should provide lease repository")
	suite.NotNil(uow2.PricingRuleRepository(), "Second instance should provide pricing rule repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDevice := suite.createTestDevice()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeviceRepository().Add(ctx, testDevice)
	suite.Require().NoError(err)

	retrieved, err := uow.DeviceRepository().Get(ctx, testDevice.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDevice.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.DeviceRepository().Get(ctx, testDevice.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDevice.ID()))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies that the order, lease
// and device writes of a lease creation land atomically in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDevice := suite.createTestDevice()
	testOrder := suite.createTestOrder(testDevice.ID())
	testLease := suite.createTestLease(testOrder.ID(), testDevice.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeviceRepository().Add(ctx, testDevice)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.LeaseRepository().Add(ctx, testLease)
	suite.Require().NoError(err)

	err = testOrder.AttachLease(testLease.ID())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = testDevice.AssignLease(testLease.ID())
	suite.Require().NoError(err)
	err = uow.DeviceRepository().Update(ctx, testDevice)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Lease())
	suite.True(retrievedOrder.Lease().IsEqual(testLease.ID()))

	retrievedDevice, err := newUow.DeviceRepository().Get(ctx, testDevice.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedDevice.CurrentLease())
	suite.True(retrievedDevice.CurrentLease().IsEqual(testLease.ID()))

	retrievedLease, err := newUow.LeaseRepository().Get(ctx, testLease.ID())
	suite.Require().NoError(err)
	suite.Equal(lease.StatusActive, retrievedLease.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDevice := suite.createTestDevice()
	testOrder := suite.createTestOrder(testDevice.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeviceRepository().Add(ctx, testDevice)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = uow.DeviceRepository().Get(ctx, testDevice.ID())
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.DeviceRepository().Get(ctx, testDevice.ID())
	suite.Require().Error(err, "Device should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	device1 := suite.createTestDevice()
	device2 := suite.createTestDevice()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.DeviceRepository().Add(ctx, device1)
	suite.Require().NoError(err)
	err = uow2.DeviceRepository().Add(ctx, device2)
	suite.Require().NoError(err)

	// Uncommitted writes stay invisible to the other transaction.
	_, err = uow2.DeviceRepository().Get(ctx, device1.ID())
	suite.Require().Error(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.DeviceRepository().Get(ctx, device1.ID())
	suite.Require().NoError(err)
	_, err = newUow.DeviceRepository().Get(ctx, device2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDevice() *device.Device {
	location, err := kernel.NewGeoPoint(18.5204, 73.8567)
	suite.Require().NoError(err)
	pincode, err := kernel.NewPincode("411001")
	suite.Require().NoError(err)

	aggregate, err := device.NewDevice(kernel.NewUUID(), "tractor", location, pincode)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(deviceID kernel.UUID) *order.Order {
	hours := 400
	quantity, err := order.NewQuantity(&hours, nil)
	suite.Require().NoError(err)

	period, err := kernel.NewDateRange(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.TypeLease,
		deviceID,
		kernel.NewUUID(),
		order.AdministratorHandler(),
		quantity,
		period,
		"kharif season lease",
	)
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.TransitionTo(order.StatusUnderReview, ""))
	suite.Require().NoError(aggregate.TransitionTo(order.StatusAccepted, ""))
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestLease(orderID, deviceID kernel.UUID) *lease.Lease {
	commitment, err := lease.NewCommitment(pricing.MetricHours, 400)
	suite.Require().NoError(err)

	period, err := kernel.NewDateRange(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	aggregate, err := lease.NewLease(
		kernel.NewUUID(),
		orderID,
		deviceID,
		kernel.NewUUID(),
		commitment,
		18_000_000,
		1_800_000,
		period,
		[]string{"https://files.local/lease/agreement.pdf"},
	)
	suite.Require().NoError(err)
	return aggregate
}

// TestUnitOfWorkIntegrationSuite runs the integration test suite.
func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
