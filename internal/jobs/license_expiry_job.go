package jobs

import (
	"context"
	"log/slog"

	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/driver"

	"github.com/robfig/cron/v3"
)

// LicenseExpiryJob surfaces drivers whose licenses need renewal.
// Runs every morning so fleet managers see the day's renewal work at shift start.
type LicenseExpiryJob struct {
	handler queries.GetLicenseExpiryReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLicenseExpiryJob creates the daily license renewal check.
func NewLicenseExpiryJob(handler queries.GetLicenseExpiryReportQueryHandler, logger *slog.Logger) *LicenseExpiryJob {
	return &LicenseExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "license_expiry_job"),
	}
}

// Start schedules the check to run daily at 06:00.
func (j *LicenseExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "License expiry job started (running daily at 06:00)")
	return nil
}

// Stop stops the license expiry job.
func (j *LicenseExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "License expiry job stopped")
}

func (j *LicenseExpiryJob) run() {
	ctx := context.Background()
	query := queries.NewGetLicenseExpiryReportQuery()

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "License expiry job failed", "error", err)
		return
	}

	for _, entry := range report {
		switch entry.Bucket {
		case driver.Expired:
			j.logger.WarnContext(ctx, "Driver license expired",
				"driver_id", entry.ID.String(),
				"driver_name", entry.Name,
				"days_overdue", -entry.DaysRemaining,
			)
		case driver.ExpiringSoon:
			j.logger.InfoContext(ctx, "Driver license expiring soon",
				"driver_id", entry.ID.String(),
				"driver_name", entry.Name,
				"days_remaining", entry.DaysRemaining,
			)
		case driver.Compliant:
			// nothing to report
		}
	}
}
