package notify_test

import (
	"bytes"
	"log/slog"
	"testing"

	"agrilease/internal/adapters/out/notify"
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() (*notify.Dispatcher, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return notify.NewDispatcher(logger), &buf
}

func TestDispatcher_DeliversNotification(t *testing.T) {
	dispatcher, buf := newTestDispatcher()

	recipientID := kernel.NewUUID()
	dispatcher.Notify(ports.Notification{
		Event:         ports.EventLeaseCreated,
		RecipientRole: actor.RoleDistributor,
		RecipientID:   recipientID,
		Payload:       map[string]string{"leaseID": "l-1"},
	})
	dispatcher.Close()

	output := buf.String()
	assert.Contains(t, output, "Notification delivered")
	assert.Contains(t, output, string(ports.EventLeaseCreated))
	assert.Contains(t, output, "Distributor")
	assert.Contains(t, output, recipientID.String())
	assert.Contains(t, output, "payload_leaseID=l-1")
}

func TestDispatcher_OmitsZeroRecipientID(t *testing.T) {
	dispatcher, buf := newTestDispatcher()

	dispatcher.Notify(ports.Notification{
		Event:         ports.EventOrderCreated,
		RecipientRole: actor.RoleAdministrator,
	})
	dispatcher.Close()

	output := buf.String()
	assert.Contains(t, output, string(ports.EventOrderCreated))
	assert.NotContains(t, output, "recipient_id")
}

func TestDispatcher_RecordsAuditEntry(t *testing.T) {
	dispatcher, buf := newTestDispatcher()

	entityID := kernel.NewUUID()
	dispatcher.LogEvent(ports.AuditEntry{
		EntityType: "order",
		EntityID:   entityID,
		Action:     "cancel",
		From:       "InterestRaised",
		To:         "Cancelled",
	})
	dispatcher.Close()

	output := buf.String()
	assert.Contains(t, output, "Audit entry recorded")
	assert.Contains(t, output, entityID.String())
	assert.Contains(t, output, "from=InterestRaised")
	assert.Contains(t, output, "to=Cancelled")
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	dispatcher, _ := newTestDispatcher()

	dispatcher.Close()
	require.NotPanics(t, dispatcher.Close)
}

func TestDispatcher_EnqueueAfterCloseDoesNotPanic(t *testing.T) {
	dispatcher, buf := newTestDispatcher()
	dispatcher.Close()

	require.NotPanics(t, func() {
		dispatcher.Notify(ports.Notification{Event: ports.EventOrderCreated})
	})
	assert.Contains(t, buf.String(), "Message dropped during shutdown")
}
