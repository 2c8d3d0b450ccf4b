// Package devicerepo provides data transfer objects and mapping functions
// for device persistence.
package devicerepo

import (
	"github.com/google/uuid"

	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
)

// DeviceDTO represents the database structure for persisting device
// aggregates. Version backs the conditional update protecting lease
// assignment against concurrent writers.
type DeviceDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeviceType     string     `gorm:"type:varchar(64);not null;index"`
	Pincode        string     `gorm:"type:varchar(6);not null;index"`
	Lat            float64    `gorm:"type:double precision;not null"`
	Lon            float64    `gorm:"type:double precision;not null"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	CurrentLeaseID *uuid.UUID `gorm:"type:uuid"`
	Version        int64      `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "devices".
func (DeviceDTO) TableName() string {
	return "devices"
}

// fromDomain converts a device aggregate to its database representation.
func fromDomain(aggregate *device.Device) DeviceDTO {
	var currentLeaseID *uuid.UUID
	if id := aggregate.CurrentLease(); id != nil {
		raw := id.Bytes()
		currentLeaseID = &raw
	}

	return DeviceDTO{
		ID:             aggregate.ID().Bytes(),
		DeviceType:     aggregate.DeviceType(),
		Pincode:        aggregate.Pincode().String(),
		Lat:            aggregate.Location().Lat(),
		Lon:            aggregate.Location().Lon(),
		Status:         aggregate.Status().String(),
		CurrentLeaseID: currentLeaseID,
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to a device aggregate.
func toDomain(dto DeviceDTO) (*device.Device, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	status, err := device.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentLeaseID *kernel.UUID
	if dto.CurrentLeaseID != nil {
		leaseID, leaseErr := kernel.UUIDFromBytes((*dto.CurrentLeaseID)[:])
		if leaseErr != nil {
			return nil, leaseErr
		}
		currentLeaseID = &leaseID
	}

	return device.RestoreDevice(id, dto.DeviceType, location, pincode, status, currentLeaseID, dto.Version)
}
