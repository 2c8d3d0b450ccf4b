package ports

import (
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
)

// NotificationEvent names the business moments the core announces.
type NotificationEvent string

const (
	// EventOrderCreated announces a newly placed order to its handler.
	EventOrderCreated NotificationEvent = "order.created"

	// EventOrderStatusChanged announces an order transition.
	EventOrderStatusChanged NotificationEvent = "order.status_changed"

	// EventOrderCancelled announces a requester cancellation to the handler.
	EventOrderCancelled NotificationEvent = "order.cancelled"

	// EventOrderRejected announces a handler rejection to the requester.
	EventOrderRejected NotificationEvent = "order.rejected"

	// EventLeaseCreated announces a new lease to the distributor.
	EventLeaseCreated NotificationEvent = "lease.created"

	// EventOperatorAssigned announces an assignment to the operator.
	EventOperatorAssigned NotificationEvent = "lease.operator_assigned"

	// EventLeaseEnded announces a completed or terminated lease.
	EventLeaseEnded NotificationEvent = "lease.ended"
)

// Notification is the message handed to the Notifier. RecipientID is zero
// when the recipient is a role rather than a specific identity.
type Notification struct {
	Event         NotificationEvent
	RecipientRole actor.Role
	RecipientID   kernel.UUID
	Payload       map[string]string
}

// Notifier delivers notifications to actors. Delivery is best-effort and
// asynchronous: implementations must never block the caller, and failures
// are logged, not returned.
type Notifier interface {
	Notify(notification Notification)
}
