package queries

import (
	"context"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFleetMetricsQueryHandler computes fleet-wide metrics from the database.
// Uses direct SQL aggregation for optimal read performance in the CQRS pattern.
//
// Results are served from the cache when a fresh snapshot is available; the
// cache is invalidated by the change feed whenever a command commits, so a
// cached response never outlives the data it was computed from.
type GetFleetMetricsQueryHandler struct {
	db    *gorm.DB
	cache *MetricsCache
}

// NewGetFleetMetricsQueryHandler creates a handler for fleet metrics queries.
// The cache is optional; pass nil to compute every request from the database.
func NewGetFleetMetricsQueryHandler(db *gorm.DB, cache *MetricsCache) GetFleetMetricsQueryHandler {
	return GetFleetMetricsQueryHandler{db: db, cache: cache}
}

// Handle executes the query and returns the fleet metrics read model.
// Per-vehicle ROI is sorted by vehicle name.
func (h GetFleetMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetFleetMetricsQuery,
) (GetFleetMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetMetricsQueryResponse{}, err
	}

	var gen uint64
	if h.cache != nil {
		if snapshot, ok := h.cache.Get(); ok {
			return snapshot, nil
		}
		gen = h.cache.Generation()
	}

	response, err := h.compute(ctx)
	if err != nil {
		return GetFleetMetricsQueryResponse{}, err
	}

	if h.cache != nil {
		// Discarded when an invalidation raced the computation; the result is
		// still correct for this caller, just not safe to keep serving.
		h.cache.SetIfGeneration(response, gen)
	}

	return response, nil
}

// Refresh recomputes the metrics and re-warms the cache, skipping any cached
// snapshot. Used by the periodic snapshot job so an invalidated cache does not
// stay cold until the next dashboard request.
func (h GetFleetMetricsQueryHandler) Refresh(ctx context.Context) error {
	if h.cache == nil {
		return nil
	}

	gen := h.cache.Generation()

	response, err := h.compute(ctx)
	if err != nil {
		return err
	}

	h.cache.SetIfGeneration(response, gen)
	return nil
}

func (h GetFleetMetricsQueryHandler) compute(ctx context.Context) (GetFleetMetricsQueryResponse, error) {
	var response GetFleetMetricsQueryResponse

	vehicleROI, err := h.vehicleROI(ctx)
	if err != nil {
		return response, err
	}
	response.VehicleROI = vehicleROI

	utilization, err := h.utilizationRate(ctx)
	if err != nil {
		return response, err
	}
	response.UtilizationRate = utilization

	compliance, err := h.complianceRate(ctx)
	if err != nil {
		return response, err
	}
	response.ComplianceRate = compliance

	netProfit, err := h.netProfit(ctx)
	if err != nil {
		return response, err
	}
	response.NetProfit = netProfit

	return response, nil
}

func (h GetFleetMetricsQueryHandler) vehicleROI(ctx context.Context) ([]VehicleROIResponse, error) {
	results := make([]VehicleROIResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.name,
			v.acquisition_cost,
			COALESCE(t.completed_revenue, 0),
			COALESCE(e.total_expenses, 0)
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id, SUM(revenue) AS completed_revenue
			FROM trips
			WHERE status = ?
			GROUP BY vehicle_id
		) t ON t.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id, SUM(amount) AS total_expenses
			FROM expenses
			GROUP BY vehicle_id
		) e ON e.vehicle_id = v.id
		ORDER BY v.name
	`, int(trip.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var result VehicleROIResponse
		var id uuid.UUID
		var acquisitionCost, completedRevenue, totalExpenses float64

		err = rows.Scan(
			&id,
			&result.Name,
			&acquisitionCost,
			&completedRevenue,
			&totalExpenses,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		result.ID = vehicleID
		result.ROI = ROI(completedRevenue, totalExpenses, acquisitionCost)
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (h GetFleetMetricsQueryHandler) utilizationRate(ctx context.Context) (float64, error) {
	var onTrip, active int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status <> ?)
		FROM vehicles
	`, int(vehicle.OnTrip), int(vehicle.Retired)).Row()

	if err := row.Scan(&onTrip, &active); err != nil {
		return 0, err
	}

	return UtilizationRate(onTrip, active), nil
}

func (h GetFleetMetricsQueryHandler) complianceRate(ctx context.Context) (float64, error) {
	var compliant, total int

	// Compliant means the license outlasts the renewal window in whole
	// calendar days, matching the driver aggregate's bucket boundaries.
	cutoff := startOfDay(time.Now().UTC()).AddDate(0, 0, driver.ComplianceWindowDays+1)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE license_expiry >= ?),
			COUNT(*)
		FROM drivers
	`, cutoff).Row()

	if err := row.Scan(&compliant, &total); err != nil {
		return 0, err
	}

	return ComplianceRate(compliant, total), nil
}

func (h GetFleetMetricsQueryHandler) netProfit(ctx context.Context) (float64, error) {
	var totalRevenue, totalExpenses float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((SELECT SUM(revenue) FROM trips), 0),
			COALESCE((SELECT SUM(amount) FROM expenses), 0)
	`).Row()

	if err := row.Scan(&totalRevenue, &totalExpenses); err != nil {
		return 0, err
	}

	return NetProfit(totalRevenue, totalExpenses), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
