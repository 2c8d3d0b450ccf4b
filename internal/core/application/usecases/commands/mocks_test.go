package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrilease/internal/core/application/usecases/commands"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/ports"
)

type MockDeviceRepository struct{ mock.Mock }

func (m *MockDeviceRepository) Add(ctx context.Context, d *device.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeviceRepository) Update(ctx context.Context, d *device.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeviceRepository) Get(ctx context.Context, id kernel.UUID) (*device.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*device.Device), args.Error(1)
}

func (m *MockDeviceRepository) GetAllLive(ctx context.Context) ([]*device.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*device.Device), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByDevice(ctx context.Context, deviceID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLeaseRepository struct{ mock.Mock }

func (m *MockLeaseRepository) Add(ctx context.Context, l *lease.Lease) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeaseRepository) Update(ctx context.Context, l *lease.Lease) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeaseRepository) Get(ctx context.Context, id kernel.UUID) (*lease.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lease.Lease), args.Error(1)
}

func (m *MockLeaseRepository) GetAllActiveExpiredBy(ctx context.Context, now time.Time) ([]*lease.Lease, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lease.Lease), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

func (m *MockPricingRuleRepository) GetAllByScope(
	ctx context.Context,
	deviceType string,
	pincode kernel.Pincode,
) ([]*pricing.Rule, error) {
	args := m.Called(ctx, deviceType, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Rule), args.Error(1)
}

// MockUoW implements every repository factory, so it satisfies each of the
// narrower unit of work shapes the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeviceRepository() ports.DeviceRepository {
	args := m.Called()
	return args.Get(0).(ports.DeviceRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LeaseRepository() ports.LeaseRepository {
	args := m.Called()
	return args.Get(0).(ports.LeaseRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRuleRepository)
}

type MockDeviceUoWFactory struct{ mock.Mock }

func (m *MockDeviceUoWFactory) Create() commands.DeviceUoW {
	args := m.Called()
	return args.Get(0).(commands.DeviceUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLeaseUoWFactory struct{ mock.Mock }

func (m *MockLeaseUoWFactory) Create() commands.LeaseUoW {
	args := m.Called()
	return args.Get(0).(commands.LeaseUoW)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	args := m.Called()
	return args.Get(0).(commands.PricingUoW)
}

type MockDevicePricingUoWFactory struct{ mock.Mock }

func (m *MockDevicePricingUoWFactory) Create() commands.DevicePricingUoW {
	args := m.Called()
	return args.Get(0).(commands.DevicePricingUoW)
}

type MockOrderCreationUoWFactory struct{ mock.Mock }

func (m *MockOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCreationUoW)
}

type MockLeaseDeviceUoWFactory struct{ mock.Mock }

func (m *MockLeaseDeviceUoWFactory) Create() commands.LeaseDeviceUoW {
	args := m.Called()
	return args.Get(0).(commands.LeaseDeviceUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(notification ports.Notification) {
	m.Called(notification)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) LogEvent(entry ports.AuditEntry) {
	m.Called(entry)
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(
	ctx context.Context,
	scope string,
	entityID kernel.UUID,
	files []ports.FileUpload,
) ([]string, error) {
	args := m.Called(ctx, scope, entityID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Shared fixtures.

func testUUID(t *testing.T) kernel.UUID {
	t.Helper()
	return kernel.NewUUID()
}

func testPincode(t *testing.T) kernel.Pincode {
	t.Helper()
	p, err := kernel.NewPincode("411001")
	require.NoError(t, err)
	return p
}

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)
	return location
}

func testPeriod(t *testing.T) kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return period
}

func testQuantity(t *testing.T, hours int) order.Quantity {
	t.Helper()
	q, err := order.NewQuantity(&hours, nil)
	require.NoError(t, err)
	return q
}

func testDevice(t *testing.T, status device.Status, currentLease *kernel.UUID) *device.Device {
	t.Helper()
	d, err := device.RestoreDevice(testUUID(t), "tractor", testLocation(t), testPincode(t), status, currentLease, 1)
	require.NoError(t, err)
	return d
}

func testOrder(t *testing.T, orderType order.Type, status order.Status, handler order.Handler) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(testUUID(t), orderType, status, testUUID(t), testUUID(t),
		handler, testQuantity(t, 400), testPeriod(t), "", nil, 1)
	require.NoError(t, err)
	return o
}

func testLease(t *testing.T) *lease.Lease {
	t.Helper()
	commitment, err := lease.NewCommitment(pricing.MetricHours, 400)
	require.NoError(t, err)
	l, err := lease.NewLease(testUUID(t), testUUID(t), testUUID(t), testUUID(t),
		commitment, 2500000, 500000, testPeriod(t), nil)
	require.NoError(t, err)
	return l
}

func testDefaultRule(t *testing.T) *pricing.Rule {
	t.Helper()
	rate, err := pricing.NewRate(pricing.MetricHours, 45000)
	require.NoError(t, err)
	rule, err := pricing.NewDefaultRule(testUUID(t), "tractor", testPincode(t),
		[]pricing.Rate{rate}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return rule
}
