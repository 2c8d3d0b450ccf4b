package ports

import (
	"agrilease/internal/core/domain/model/kernel"
)

// AuditEntry records a state-changing action on an entity. From and To
// are empty for actions that are not transitions.
type AuditEntry struct {
	EntityType string
	EntityID   kernel.UUID
	Action     string
	From       string
	To         string
	Note       string
}

// AuditLog records entries for later inspection. Recording is best-effort
// and asynchronous: implementations must never block the caller, and
// failures are logged, not returned.
type AuditLog interface {
	LogEvent(entry AuditEntry)
}
