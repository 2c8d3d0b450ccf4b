package lease

import (
	"errors"
	"fmt"
	"time"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

// ErrLeaseIsNotConstructed is returned when a Lease instance was not
// created through NewLease or RestoreLease.
var ErrLeaseIsNotConstructed = errors.New("Lease must be created via NewLease constructor")

// ErrCommitmentIsNotConstructed is returned when attempting to use an
// improperly initialized Commitment.
var ErrCommitmentIsNotConstructed = errs.NewValueIsRequiredError(
	"commitment must be created via NewCommitment constructor")

// Commitment is the usage amount the distributor commits to, expressed in
// a single pricing metric.
type Commitment struct { //nolint:recvcheck //using for validation
	metric   pricing.Metric
	quantity int
	guard    guard.ConstructorGuard
}

// NewCommitment creates a Commitment with a positive quantity.
func NewCommitment(metric pricing.Metric, quantity int) (Commitment, error) {
	if err := metric.Validate(); err != nil {
		return Commitment{}, err
	}
	if quantity <= 0 {
		return Commitment{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Commitment{metric: metric, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

// Metric returns the pricing metric of the commitment.
func (c Commitment) Metric() pricing.Metric {
	return c.metric
}

// Quantity returns the committed amount.
func (c Commitment) Quantity() int {
	return c.quantity
}

// Validate checks that the commitment was created via NewCommitment.
func (c Commitment) Validate() error {
	return c.guard.Validate(ErrCommitmentIsNotConstructed)
}

// Lease is the aggregate root representing real equipment control granted
// to a distributor, created from exactly one accepted Lease order.
//
// Invariants:
//   - the lease's device must not carry another active lease at creation
//     time; lease creation is the sole writer of the device's lease
//     reference
//   - at most one Primary operator is assigned at any time
type Lease struct {
	id            kernel.UUID
	orderID       kernel.UUID
	deviceID      kernel.UUID
	distributorID kernel.UUID
	status        Status
	commitment    Commitment
	// estimatedPrice and deposit are carried in minor currency units.
	estimatedPrice int64
	deposit        int64
	period         kernel.DateRange
	operators      []OperatorAssignment
	attachments    []string
	isConstructed  bool
}

// NewLease creates a lease in Active status from an accepted lease order.
func NewLease(
	id kernel.UUID,
	orderID kernel.UUID,
	deviceID kernel.UUID,
	distributorID kernel.UUID,
	commitment Commitment,
	estimatedPrice int64,
	deposit int64,
	period kernel.DateRange,
	attachments []string,
) (*Lease, error) {
	l := &Lease{
		status:        StatusActive,
		attachments:   append([]string(nil), attachments...),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setDeviceID(deviceID),
		l.setDistributorID(distributorID),
		l.setCommitment(commitment),
		l.setEstimatedPrice(estimatedPrice),
		l.setDeposit(deposit),
		l.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLease reconstructs a lease from persistence.
func RestoreLease(
	id kernel.UUID,
	orderID kernel.UUID,
	deviceID kernel.UUID,
	distributorID kernel.UUID,
	status Status,
	commitment Commitment,
	estimatedPrice int64,
	deposit int64,
	period kernel.DateRange,
	operators []OperatorAssignment,
	attachments []string,
) (*Lease, error) {
	l, err := NewLease(id, orderID, deviceID, distributorID, commitment, estimatedPrice, deposit, period, attachments)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, op := range operators {
		if err = op.Validate(); err != nil {
			return nil, err
		}
	}

	l.status = status
	l.operators = append([]OperatorAssignment(nil), operators...)
	return l, nil
}

// Validate ensures the Lease instance was properly constructed.
func (l *Lease) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLeaseIsNotConstructed
	}
	return nil
}

// ID returns the lease's unique identifier.
func (l *Lease) ID() kernel.UUID {
	return l.id
}

// OrderID returns the accepted lease order this lease was created from.
func (l *Lease) OrderID() kernel.UUID {
	return l.orderID
}

// DeviceID returns the leased device.
func (l *Lease) DeviceID() kernel.UUID {
	return l.deviceID
}

// DistributorID returns the distributor holding the lease.
func (l *Lease) DistributorID() kernel.UUID {
	return l.distributorID
}

// Status returns the current lifecycle status.
func (l *Lease) Status() Status {
	return l.status
}

// Commitment returns the committed usage amount.
func (l *Lease) Commitment() Commitment {
	return l.commitment
}

// EstimatedPrice returns the estimated price in minor currency units.
func (l *Lease) EstimatedPrice() int64 {
	return l.estimatedPrice
}

// Deposit returns the deposit in minor currency units.
func (l *Lease) Deposit() int64 {
	return l.deposit
}

// Period returns the lease date range.
func (l *Lease) Period() kernel.DateRange {
	return l.period
}

// Operators returns the current operator assignments.
func (l *Lease) Operators() []OperatorAssignment {
	return append([]OperatorAssignment(nil), l.operators...)
}

// Attachments returns the stored attachment URLs.
func (l *Lease) Attachments() []string {
	return append([]string(nil), l.attachments...)
}

// AssignOperator adds an operator assignment. A Primary assignment
// replaces any existing Primary so that at most one exists at all times;
// Secondary assignments accumulate.
func (l *Lease) AssignOperator(assignment OperatorAssignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}
	if l.status != StatusActive {
		return errs.NewPreconditionFailedError("lease is not active")
	}

	if assignment.Role() == OperatorRolePrimary {
		kept := l.operators[:0]
		for _, op := range l.operators {
			if op.Role() != OperatorRolePrimary {
				kept = append(kept, op)
			}
		}
		l.operators = kept
	}

	l.operators = append(l.operators, assignment)
	return nil
}

// PrimaryOperator returns the current primary assignment, if any.
func (l *Lease) PrimaryOperator() (OperatorAssignment, bool) {
	for _, op := range l.operators {
		if op.Role() == OperatorRolePrimary {
			return op, true
		}
	}
	return OperatorAssignment{}, false
}

// Complete ends the lease at its agreed end. The caller must release the
// device in the same transaction.
func (l *Lease) Complete() error {
	return l.end(StatusCompleted)
}

// Terminate ends the lease early. The caller must release the device in
// the same transaction.
func (l *Lease) Terminate() error {
	return l.end(StatusTerminated)
}

// IsExpired reports whether an active lease has run past its period end.
func (l *Lease) IsExpired(now time.Time) bool {
	return l.status == StatusActive && now.After(l.period.To())
}

func (l *Lease) end(to Status) error {
	if l.status != StatusActive {
		return errs.NewInvalidTransitionError(l.status.String(), to.String())
	}
	l.status = to
	return nil
}

func (l *Lease) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Lease) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.orderID = id
	return nil
}

func (l *Lease) setDeviceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.deviceID = id
	return nil
}

func (l *Lease) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.distributorID = id
	return nil
}

func (l *Lease) setCommitment(c Commitment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	l.commitment = c
	return nil
}

func (l *Lease) setEstimatedPrice(v int64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPrice",
			fmt.Errorf("%d is negative", v))
	}
	l.estimatedPrice = v
	return nil
}

func (l *Lease) setDeposit(v int64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deposit",
			fmt.Errorf("%d is negative", v))
	}
	l.deposit = v
	return nil
}

func (l *Lease) setPeriod(p kernel.DateRange) error {
	if err := p.Validate(); err != nil {
		return err
	}
	l.period = p
	return nil
}
