// Package leaserepo provides data transfer objects and mapping functions
// for lease persistence.
package leaserepo

import (
	"time"

	"github.com/google/uuid"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/pricing"
)

// LeaseDTO represents the database structure for persisting lease
// aggregates. Operator assignments live in their own table; attachment
// URLs are stored as a JSON document.
type LeaseDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	DeviceID       uuid.UUID     `gorm:"type:uuid;not null;index"`
	DistributorID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Status         string        `gorm:"type:varchar(16);not null;index"`
	Metric         string        `gorm:"type:varchar(16);not null"`
	Quantity       int           `gorm:"type:int;not null"`
	EstimatedPrice int64         `gorm:"type:bigint;not null"`
	Deposit        int64         `gorm:"type:bigint;not null"`
	PeriodFrom     time.Time     `gorm:"type:timestamptz;not null"`
	PeriodTo       time.Time     `gorm:"type:timestamptz;not null;index"`
	Attachments    []string      `gorm:"type:jsonb;serializer:json"`
	Operators      []OperatorDTO `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "leases".
func (LeaseDTO) TableName() string {
	return "leases"
}

// OperatorDTO represents one operator assignment on a lease.
type OperatorDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	LeaseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OperatorID uuid.UUID `gorm:"type:uuid;not null"`
	Role       string    `gorm:"type:varchar(16);not null"`
	AssignedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "lease_operators".
func (OperatorDTO) TableName() string {
	return "lease_operators"
}

// fromDomain converts a lease aggregate to its database representation.
func fromDomain(aggregate *lease.Lease) LeaseDTO {
	leaseID := aggregate.ID().Bytes()

	operators := make([]OperatorDTO, 0, len(aggregate.Operators()))
	for _, assignment := range aggregate.Operators() {
		operators = append(operators, OperatorDTO{
			LeaseID:    leaseID,
			OperatorID: assignment.OperatorID().Bytes(),
			Role:       assignment.Role().String(),
			AssignedAt: assignment.AssignedAt(),
		})
	}

	return LeaseDTO{
		ID:             leaseID,
		OrderID:        aggregate.OrderID().Bytes(),
		DeviceID:       aggregate.DeviceID().Bytes(),
		DistributorID:  aggregate.DistributorID().Bytes(),
		Status:         aggregate.Status().String(),
		Metric:         aggregate.Commitment().Metric().String(),
		Quantity:       aggregate.Commitment().Quantity(),
		EstimatedPrice: aggregate.EstimatedPrice(),
		Deposit:        aggregate.Deposit(),
		PeriodFrom:     aggregate.Period().From(),
		PeriodTo:       aggregate.Period().To(),
		Attachments:    aggregate.Attachments(),
		Operators:      operators,
	}
}

// toDomain converts a database DTO to a lease aggregate.
func toDomain(dto LeaseDTO) (*lease.Lease, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	deviceID, err := kernel.UUIDFromBytes(dto.DeviceID[:])
	if err != nil {
		return nil, err
	}

	distributorID, err := kernel.UUIDFromBytes(dto.DistributorID[:])
	if err != nil {
		return nil, err
	}

	status, err := lease.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	metric, err := pricing.MetricFromString(dto.Metric)
	if err != nil {
		return nil, err
	}

	commitment, err := lease.NewCommitment(metric, dto.Quantity)
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewDateRange(dto.PeriodFrom, dto.PeriodTo)
	if err != nil {
		return nil, err
	}

	operators := make([]lease.OperatorAssignment, 0, len(dto.Operators))
	for _, operatorDTO := range dto.Operators {
		assignment, opErr := operatorToDomain(operatorDTO)
		if opErr != nil {
			return nil, opErr
		}
		operators = append(operators, assignment)
	}

	return lease.RestoreLease(id, orderID, deviceID, distributorID, status,
		commitment, dto.EstimatedPrice, dto.Deposit, period, operators, dto.Attachments)
}

func operatorToDomain(dto OperatorDTO) (lease.OperatorAssignment, error) {
	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return lease.OperatorAssignment{}, err
	}

	role, err := lease.OperatorRoleFromString(dto.Role)
	if err != nil {
		return lease.OperatorAssignment{}, err
	}

	return lease.NewOperatorAssignment(operatorID, role, dto.AssignedAt)
}
