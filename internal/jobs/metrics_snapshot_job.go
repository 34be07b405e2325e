package jobs

import (
	"context"
	"log/slog"

	"fleetflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// MetricsSnapshotJob keeps the fleet metrics cache warm. Runs every five
// minutes so the first dashboard request after an invalidation does not pay
// the aggregation cost.
type MetricsSnapshotJob struct {
	handler queries.GetFleetMetricsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMetricsSnapshotJob creates the periodic metrics refresh job.
func NewMetricsSnapshotJob(handler queries.GetFleetMetricsQueryHandler, logger *slog.Logger) *MetricsSnapshotJob {
	return &MetricsSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "metrics_snapshot_job"),
	}
}

// Start schedules the refresh to run every five minutes.
func (j *MetricsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		if err := j.handler.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Metrics snapshot job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Metrics snapshot job started (running every 5 minutes)")
	return nil
}

// Stop stops the metrics snapshot job.
func (j *MetricsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Metrics snapshot job stopped")
}
