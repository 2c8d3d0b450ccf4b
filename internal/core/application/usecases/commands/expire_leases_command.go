package commands

import (
	"errors"
	"time"

	"agrilease/internal/pkg/guard"
)

var ErrExpireLeasesCommandIsNotConstructed = errors.New(
	"ExpireLeasesCommand must be created via NewExpireLeasesCommand constructor",
)

// ExpireLeasesCommand represents the periodic sweep ending active leases
// that have run past their period end. Driven by the scheduler, not by a
// user.
type ExpireLeasesCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireLeasesCommand creates a command to expire overdue leases as of
// the given instant.
func NewExpireLeasesCommand(now time.Time) ExpireLeasesCommand {
	return ExpireLeasesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireLeasesCommand) Validate() error {
	return c.guard.Validate(ErrExpireLeasesCommandIsNotConstructed)
}

// Now returns the instant leases are measured against.
func (c ExpireLeasesCommand) Now() time.Time {
	return c.now
}
