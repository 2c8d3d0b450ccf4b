// Package notify delivers notifications and audit records asynchronously.
// The core treats both as best-effort side effects: handlers enqueue and
// move on, a single worker drains the queue in the background. When the
// queue is full the message is dropped and the drop is logged, never the
// caller blocked.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"agrilease/internal/core/ports"
)

const defaultQueueSize = 256

type message struct {
	notification *ports.Notification
	audit        *ports.AuditEntry
}

// Dispatcher implements ports.Notifier and ports.AuditLog over a buffered
// queue drained by a single worker goroutine.
type Dispatcher struct {
	logger *slog.Logger
	queue  chan message

	stopOnce sync.Once
	done     chan struct{}
}

// NewDispatcher creates a dispatcher and starts its worker.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger.With("component", "notify_dispatcher"),
		queue:  make(chan message, defaultQueueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Notify enqueues a notification for delivery. Never blocks.
func (d *Dispatcher) Notify(notification ports.Notification) {
	d.enqueue(message{notification: &notification})
}

// LogEvent enqueues an audit entry for recording. Never blocks.
func (d *Dispatcher) LogEvent(entry ports.AuditEntry) {
	d.enqueue(message{audit: &entry})
}

// Close stops the worker after draining messages already enqueued.
func (d *Dispatcher) Close() {
	d.stopOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) enqueue(msg message) {
	defer func() {
		// Enqueue after Close panics on the closed channel; a message
		// during shutdown is dropped like any other overflow.
		if recover() != nil {
			d.logger.Warn("Message dropped during shutdown")
		}
	}()

	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("Queue full, message dropped")
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	ctx := context.Background()
	for msg := range d.queue {
		switch {
		case msg.notification != nil:
			d.deliver(ctx, *msg.notification)
		case msg.audit != nil:
			d.record(ctx, *msg.audit)
		}
	}
}

// deliver is where a real channel (SMS, push, mail) would plug in. The
// default delivery is the structured log itself.
func (d *Dispatcher) deliver(ctx context.Context, n ports.Notification) {
	attrs := []any{
		"event", string(n.Event),
		"recipient_role", n.RecipientRole.String(),
	}
	if err := n.RecipientID.Validate(); err == nil {
		attrs = append(attrs, "recipient_id", n.RecipientID.String())
	}
	for key, value := range n.Payload {
		attrs = append(attrs, "payload_"+key, value)
	}

	d.logger.InfoContext(ctx, "Notification delivered", attrs...)
}

func (d *Dispatcher) record(ctx context.Context, entry ports.AuditEntry) {
	attrs := []any{
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID.String(),
		"action", entry.Action,
	}
	if entry.From != "" || entry.To != "" {
		attrs = append(attrs, "from", entry.From, "to", entry.To)
	}
	if entry.Note != "" {
		attrs = append(attrs, "note", entry.Note)
	}

	d.logger.InfoContext(ctx, "Audit entry recorded", attrs...)
}
