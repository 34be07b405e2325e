// Package jobs provides scheduled background tasks for the fleet system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for fleet operations.
//
// # Available Jobs
//
// 1. LicenseExpiryJob - Runs daily at 06:00 to flag drivers whose licenses are expired or expiring soon
// 2. MetricsSnapshotJob - Runs every five minutes to keep the fleet metrics cache warm
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(licenseExpiryHandler, fleetMetricsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The license expiry job logs expired and expiring licenses at warn and info level
// - The metrics snapshot job logs refresh failures; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
