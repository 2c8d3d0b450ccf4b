package order

import (
	"errors"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for an equipment usage request.
//
// Invariants:
//   - the order type is fixed at creation and determines which role may
//     act as handler
//   - status only advances through the state machine defined on Status
//   - once in a terminal state the order is immutable
//   - orders are never physically deleted
//
// Orders are created already submitted, so the initial status is
// InterestRaised. The version field is the optimistic-concurrency token
// used by repositories to reject concurrent status transitions.
type Order struct {
	id            kernel.UUID
	orderType     Type
	status        Status
	deviceID      kernel.UUID
	requesterID   kernel.UUID
	handler       Handler
	quantity      Quantity
	period        kernel.DateRange
	note          string
	leaseID       *kernel.UUID
	version       int64
	isConstructed bool
}

// NewOrder creates a submitted order in InterestRaised status.
// The handler must already have been resolved for the order's type and
// device lease state.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	deviceID kernel.UUID,
	requesterID kernel.UUID,
	handler Handler,
	quantity Quantity,
	period kernel.DateRange,
	note string,
) (*Order, error) {
	o := &Order{
		status:        StatusInterestRaised,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderType(orderType),
		o.setDeviceID(deviceID),
		o.setRequesterID(requesterID),
		o.setHandler(handler),
		o.setQuantity(quantity),
		o.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	deviceID kernel.UUID,
	requesterID kernel.UUID,
	handler Handler,
	quantity Quantity,
	period kernel.DateRange,
	note string,
	leaseID *kernel.UUID,
	version int64,
) (*Order, error) {
	o, err := NewOrder(id, orderType, deviceID, requesterID, handler, quantity, period, note)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if leaseID != nil {
		if err = leaseID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.leaseID = leaseID
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderType returns the order flavor, fixed at creation.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeviceID returns the device the order refers to.
func (o *Order) DeviceID() kernel.UUID {
	return o.deviceID
}

// RequesterID returns the identity that created the order.
func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// Handler returns the party authorized to act on the order.
func (o *Order) Handler() Handler {
	return o.handler
}

// Quantity returns the requested usage amount.
func (o *Order) Quantity() Quantity {
	return o.quantity
}

// Period returns the requested date range.
func (o *Order) Period() kernel.DateRange {
	return o.period
}

// Note returns the latest free-text note attached to the order.
func (o *Order) Note() string {
	return o.note
}

// Lease returns the lease created from this order, nil when none exists.
func (o *Order) Lease() *kernel.UUID {
	return o.leaseID
}

// Version returns the optimistic-concurrency token the order was read with.
func (o *Order) Version() int64 {
	return o.version
}

// TransitionTo moves the order to a new status along a valid edge of the
// state machine, recording the note. The caller is responsible for
// verifying that the acting identity is the order's resolved handler.
func (o *Order) TransitionTo(to Status, note string) error {
	if !o.status.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError(o.status.String(), to.String())
	}
	o.status = to
	o.note = note
	return nil
}

// Cancel withdraws the order. Only valid while the order is still in
// InterestRaised; the caller must be the original requester.
func (o *Order) Cancel(note string) error {
	if o.status != StatusInterestRaised {
		return errs.NewInvalidTransitionError(o.status.String(), StatusCancelled.String())
	}
	o.status = StatusCancelled
	o.note = note
	return nil
}

// Reject refuses the order. Valid only from InterestRaised or UnderReview;
// the caller must be the order's resolved handler.
func (o *Order) Reject(note string) error {
	if o.status != StatusInterestRaised && o.status != StatusUnderReview {
		return errs.NewInvalidTransitionError(o.status.String(), StatusRejected.String())
	}
	o.status = StatusRejected
	o.note = note
	return nil
}

// AttachLease records the lease created from this order. Only an Accepted
// Lease order may carry a lease, and only one.
func (o *Order) AttachLease(leaseID kernel.UUID) error {
	if err := leaseID.Validate(); err != nil {
		return err
	}
	if o.orderType != TypeLease {
		return errs.NewPreconditionFailedError("only lease orders produce leases")
	}
	if o.status != StatusAccepted {
		return errs.NewPreconditionFailedError("order is not accepted")
	}
	if o.leaseID != nil {
		return errs.NewPreconditionFailedError("order already has a lease")
	}

	o.leaseID = &leaseID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setDeviceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.deviceID = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.requesterID = id
	return nil
}

func (o *Order) setHandler(h Handler) error {
	if err := h.Validate(); err != nil {
		return err
	}
	o.handler = h
	return nil
}

func (o *Order) setQuantity(q Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	o.quantity = q
	return nil
}

func (o *Order) setPeriod(p kernel.DateRange) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.period = p
	return nil
}
