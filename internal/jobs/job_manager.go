package jobs

import (
	"fmt"
	"log/slog"

	"fleetflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	licenseExpiryJob   *LicenseExpiryJob
	metricsSnapshotJob *MetricsSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	licenseExpiryHandler queries.GetLicenseExpiryReportQueryHandler,
	fleetMetricsHandler queries.GetFleetMetricsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		licenseExpiryJob:   NewLicenseExpiryJob(licenseExpiryHandler, logger),
		metricsSnapshotJob: NewMetricsSnapshotJob(fleetMetricsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.licenseExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start license expiry job: %w", err)
	}

	if err := jm.metricsSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.licenseExpiryJob.Stop()
		return fmt.Errorf("failed to start metrics snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.metricsSnapshotJob.Stop()
	jm.licenseExpiryJob.Stop()
}
