package jobs

import (
	"context"
	"log/slog"
	"time"

	"agrilease/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LeaseExpiryJob sweeps active leases whose period has ended and
// completes them. Runs every five minutes; a run that finds nothing due
// is a no-op.
type LeaseExpiryJob struct {
	handler commands.ExpireLeasesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLeaseExpiryJob creates the expiry sweep job.
func NewLeaseExpiryJob(handler commands.ExpireLeasesCommandHandler, logger *slog.Logger) *LeaseExpiryJob {
	return &LeaseExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "lease_expiry_job"),
	}
}

// Start schedules the sweep to run every five minutes.
func (j *LeaseExpiryJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireLeasesCommand(time.Now())

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Lease expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lease expiry job started (running every five minutes)")
	return nil
}

// Stop stops the lease expiry job.
func (j *LeaseExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Lease expiry job stopped")
}
