package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/domain/services"
)

// DiscoverDevicesQueryHandler retrieves discoverable devices from the
// database. Committed and in-progress orders exclude their device at the
// SQL level; role visibility and pricing presence are decided by the
// domain availability filter. Pricing rules per (device type, pincode)
// scope are cached for a few minutes since rules change rarely but are
// consulted for every candidate.
type DiscoverDevicesQueryHandler struct {
	db       *gorm.DB
	rules    *cache.Cache
	filter   services.AvailabilityFilter
	resolver services.PricingResolver
}

// NewDiscoverDevicesQueryHandler creates a handler for device discovery
// queries.
func NewDiscoverDevicesQueryHandler(db *gorm.DB) DiscoverDevicesQueryHandler {
	return DiscoverDevicesQueryHandler{
		db:       db,
		rules:    cache.New(5*time.Minute, 10*time.Minute),
		filter:   services.NewAvailabilityFilter(),
		resolver: services.NewPricingResolver(),
	}
}

// Handle executes the discovery query. Results are sorted by device ID and
// paginated after filtering.
func (h DiscoverDevicesQueryHandler) Handle(
	ctx context.Context,
	query DiscoverDevicesQuery,
) ([]DiscoverDevicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.liveCandidates(ctx, query.DeviceType())
	if err != nil {
		return nil, err
	}

	devices := make([]DiscoverDevicesQueryResponse, 0)

	for _, dev := range candidates {
		scopeRules, err := h.scopeRules(ctx, dev.DeviceType(), dev.Pincode())
		if err != nil {
			return nil, err
		}

		_, hasDefault := h.resolver.DefaultRule(scopeRules)
		candidate := services.DeviceCandidate{Device: dev, HasDefaultPricing: hasDefault}
		if !h.filter.IsAvailable(candidate, query.SearcherRole(), query.DeviceType()) {
			continue
		}

		resp := DiscoverDevicesQueryResponse{
			ID:         dev.ID(),
			DeviceType: dev.DeviceType(),
			Pincode:    dev.Pincode(),
			Location:   dev.Location(),
			Leased:     dev.IsLeased(),
		}
		if near := query.Near(); near != nil {
			distance := near.DistanceKm(dev.Location())
			resp.DistanceKm = &distance
		}
		if rule, ok := h.resolver.ActiveRule(scopeRules, query.AsOf()); ok {
			if rates := rule.Rates(); len(rates) > 0 {
				rate := rates[0].PricePerUnit()
				resp.IndicativeRate = &rate
				resp.RateMetric = rates[0].Metric().String()
			}
		}

		devices = append(devices, resp)
	}

	return paginate(devices, query.Page(), query.PageSize()), nil
}

// liveCandidates loads Live devices, excluding any device referenced by an
// order whose status commits the device.
func (h DiscoverDevicesQueryHandler) liveCandidates(ctx context.Context, deviceType string) ([]*device.Device, error) {
	sql := `
		SELECT
			d.id,
			d.device_type,
			d.pincode,
			d.lat,
			d.lon,
			d.current_lease_id,
			d.version
		FROM devices d
		WHERE d.status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.device_id = d.id AND o.status IN ?
		  )
	`
	args := []any{device.StatusLive.String(), blockingStatusStrings()}
	if deviceType != "" {
		sql += " AND d.device_type = ?"
		args = append(args, deviceType)
	}
	sql += " ORDER BY d.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]*device.Device, 0)

	for rows.Next() {
		var (
			id             uuid.UUID
			devType        string
			pincodeStr     string
			lat, lon       float64
			currentLeaseID *uuid.UUID
			version        int64
		)

		if err = rows.Scan(&id, &devType, &pincodeStr, &lat, &lon, &currentLeaseID, &version); err != nil {
			return nil, err
		}

		dev, err := restoreDevice(id, devType, pincodeStr, lat, lon, currentLeaseID, version)
		if err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

// scopeRules returns the pricing rules for a scope, served from cache when
// fresh.
func (h DiscoverDevicesQueryHandler) scopeRules(
	ctx context.Context,
	deviceType string,
	pincode kernel.Pincode,
) ([]*pricing.Rule, error) {
	key := fmt.Sprintf("pricing:%s:%s", deviceType, pincode)
	if cached, ok := h.rules.Get(key); ok {
		return cached.([]*pricing.Rule), nil
	}

	scopeRules, err := loadScopeRules(ctx, h.db, deviceType, pincode)
	if err != nil {
		return nil, err
	}

	h.rules.Set(key, scopeRules, cache.DefaultExpiration)
	return scopeRules, nil
}

func restoreDevice(
	id uuid.UUID,
	deviceType string,
	pincodeStr string,
	lat, lon float64,
	currentLeaseID *uuid.UUID,
	version int64,
) (*device.Device, error) {
	deviceID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	pincode, err := kernel.NewPincode(pincodeStr)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return nil, err
	}

	var leaseID *kernel.UUID
	if currentLeaseID != nil {
		restored, err := kernel.UUIDFromBytes(currentLeaseID[:])
		if err != nil {
			return nil, err
		}
		leaseID = &restored
	}

	return device.RestoreDevice(deviceID, deviceType, location, pincode, device.StatusLive, leaseID, version)
}

// blockingStatusStrings lists the order statuses that commit a device.
func blockingStatusStrings() []string {
	blocking := make([]string, 0)
	for s := order.StatusDraft; s <= order.StatusCancelled; s++ {
		if s.BlocksAvailability() {
			blocking = append(blocking, s.String())
		}
	}
	return blocking
}

func paginate(devices []DiscoverDevicesQueryResponse, page, pageSize int) []DiscoverDevicesQueryResponse {
	start := (page - 1) * pageSize
	if start >= len(devices) {
		return []DiscoverDevicesQueryResponse{}
	}
	end := start + pageSize
	if end > len(devices) {
		end = len(devices)
	}
	return devices[start:end]
}
