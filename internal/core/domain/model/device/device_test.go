package device_test

import (
	"testing"

	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)
	return p
}

func validPincode(t *testing.T) kernel.Pincode {
	t.Helper()
	p, err := kernel.NewPincode("411001")
	require.NoError(t, err)
	return p
}

func newDevice(t *testing.T) *device.Device {
	t.Helper()
	d, err := device.NewDevice(kernel.NewUUID(), "TRACTOR", validPoint(t), validPincode(t))
	require.NoError(t, err)
	return d
}

func TestNewDevice(t *testing.T) {
	t.Run("creates device in draft status", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := device.NewDevice(id, "TRACTOR", validPoint(t), validPincode(t))

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "TRACTOR", d.DeviceType())
		assert.Equal(t, device.StatusDraft, d.Status())
		assert.Nil(t, d.CurrentLease())
		assert.False(t, d.IsLeased())
		assert.Equal(t, int64(0), d.Version())
	})

	t.Run("rejects empty device type", func(t *testing.T) {
		_, err := device.NewDevice(kernel.NewUUID(), "", validPoint(t), validPincode(t))
		require.Error(t, err)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		var id kernel.UUID
		_, err := device.NewDevice(id, "TRACTOR", validPoint(t), validPincode(t))
		require.Error(t, err)
	})

	t.Run("rejects unconstructed location", func(t *testing.T) {
		var p kernel.GeoPoint
		_, err := device.NewDevice(kernel.NewUUID(), "TRACTOR", p, validPincode(t))
		require.Error(t, err)
	})
}

func TestRestoreDevice(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		leaseID := kernel.NewUUID()

		d, err := device.RestoreDevice(
			kernel.NewUUID(), "HARVESTER", validPoint(t), validPincode(t),
			device.StatusLive, &leaseID, 7,
		)

		require.NoError(t, err)
		assert.Equal(t, device.StatusLive, d.Status())
		require.NotNil(t, d.CurrentLease())
		assert.True(t, d.CurrentLease().IsEqual(leaseID))
		assert.Equal(t, int64(7), d.Version())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := device.RestoreDevice(
			kernel.NewUUID(), "HARVESTER", validPoint(t), validPincode(t),
			device.StatusUnknown, nil, 0,
		)
		require.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    device.Status
		to      device.Status
		allowed bool
	}{
		{device.StatusDraft, device.StatusOnboarded, true},
		{device.StatusDraft, device.StatusLive, false},
		{device.StatusOnboarded, device.StatusLive, true},
		{device.StatusOnboarded, device.StatusRetired, true},
		{device.StatusLive, device.StatusNotLive, true},
		{device.StatusLive, device.StatusUnderMaintenance, true},
		{device.StatusLive, device.StatusRetired, true},
		{device.StatusNotLive, device.StatusLive, true},
		{device.StatusUnderMaintenance, device.StatusLive, true},
		{device.StatusLive, device.StatusLive, false},
		{device.StatusLive, device.StatusDraft, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("retired is permanent", func(t *testing.T) {
		targets := []device.Status{
			device.StatusDraft, device.StatusOnboarded, device.StatusLive,
			device.StatusNotLive, device.StatusUnderMaintenance,
		}
		for _, to := range targets {
			assert.False(t, device.StatusRetired.CanTransitionTo(to),
				"Retired -> %s must be rejected", to)
		}
	})
}

func TestDevice_ChangeStatus(t *testing.T) {
	t.Run("walks the onboarding path", func(t *testing.T) {
		d := newDevice(t)

		require.NoError(t, d.ChangeStatus(device.StatusOnboarded))
		require.NoError(t, d.ChangeStatus(device.StatusLive))
		assert.Equal(t, device.StatusLive, d.Status())
	})

	t.Run("rejects disallowed move", func(t *testing.T) {
		d := newDevice(t)

		err := d.ChangeStatus(device.StatusLive)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, device.StatusDraft, d.Status())
	})
}

func TestDevice_AssignLease(t *testing.T) {
	t.Run("records lease reference", func(t *testing.T) {
		d := newDevice(t)
		leaseID := kernel.NewUUID()

		require.NoError(t, d.AssignLease(leaseID))

		assert.True(t, d.IsLeased())
		assert.True(t, d.CurrentLease().IsEqual(leaseID))
	})

	t.Run("rejects second lease", func(t *testing.T) {
		d := newDevice(t)
		require.NoError(t, d.AssignLease(kernel.NewUUID()))

		err := d.AssignLease(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("release clears reference", func(t *testing.T) {
		d := newDevice(t)
		require.NoError(t, d.AssignLease(kernel.NewUUID()))

		d.ReleaseLease()

		assert.False(t, d.IsLeased())
		require.NoError(t, d.AssignLease(kernel.NewUUID()), "released device can be leased again")
	})
}
