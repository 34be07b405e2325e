package queries

import (
	"context"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSafetyReportQueryHandler builds the safety report by scoring every driver
// through the configured safety score provider.
type GetSafetyReportQueryHandler struct {
	db     *gorm.DB
	scores ports.SafetyScoreProvider
}

// NewGetSafetyReportQueryHandler creates a handler for safety report queries.
func NewGetSafetyReportQueryHandler(
	db *gorm.DB,
	scores ports.SafetyScoreProvider,
) GetSafetyReportQueryHandler {
	return GetSafetyReportQueryHandler{db: db, scores: scores}
}

// Handle executes the query and returns per-driver scores sorted by name,
// with the fleet average and threshold counts.
func (h GetSafetyReportQueryHandler) Handle(
	ctx context.Context,
	query GetSafetyReportQuery,
) (GetSafetyReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSafetyReportQueryResponse{}, err
	}

	response := GetSafetyReportQueryResponse{
		Drivers: make([]DriverSafetyResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			license_expiry,
			status
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return GetSafetyReportQueryResponse{}, err
	}
	defer rows.Close()

	drivers := make([]*driver.Driver, 0)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var licenseExpiry time.Time
		var status int

		err = rows.Scan(&id, &name, &licenseExpiry, &status)
		if err != nil {
			return GetSafetyReportQueryResponse{}, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetSafetyReportQueryResponse{}, idErr
		}

		aggregate, restoreErr := driver.RestoreDriver(driverID, name, licenseExpiry, driver.Status(status))
		if restoreErr != nil {
			return GetSafetyReportQueryResponse{}, restoreErr
		}
		drivers = append(drivers, aggregate)
	}

	if err = rows.Err(); err != nil {
		return GetSafetyReportQueryResponse{}, err
	}

	var total float64
	for _, aggregate := range drivers {
		score, scoreErr := h.scores.Score(ctx, aggregate)
		if scoreErr != nil {
			return GetSafetyReportQueryResponse{}, scoreErr
		}

		response.Drivers = append(response.Drivers, DriverSafetyResponse{
			ID:    aggregate.ID(),
			Name:  aggregate.Name(),
			Score: score,
		})

		total += score
		if score < HighRiskThreshold {
			response.HighRiskCount++
		}
		if score >= SafetyCompliantThreshold {
			response.CompliantCount++
		}
	}

	if len(response.Drivers) > 0 {
		response.AverageScore = total / float64(len(response.Drivers))
	}

	return response, nil
}
