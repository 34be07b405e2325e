// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrGetFleetMetricsQueryIsNotConstructed = errors.New(
		"GetFleetMetricsQuery must be created via NewGetFleetMetricsQuery constructor",
	)
)

// GetFleetMetricsQuery retrieves aggregated financial and operational metrics
// for the whole fleet: per-vehicle ROI, utilization, driver compliance and net
// profit.
//
// Example:
//
//	query := NewGetFleetMetricsQuery()
//	handler := NewGetFleetMetricsQueryHandler(db, cache)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet metrics: %w", err)
//	}
//
//	fmt.Printf("Fleet utilization: %.1f%%\n", metrics.UtilizationRate)
type GetFleetMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetMetricsQuery creates a query to retrieve fleet-wide metrics.
// This is a parameterless query; the handler aggregates over all entities.
func NewGetFleetMetricsQuery() GetFleetMetricsQuery {
	return GetFleetMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetMetricsQueryIsNotConstructed if validation fails.
func (q GetFleetMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetMetricsQueryIsNotConstructed)
}

// VehicleROIResponse carries the return on investment for a single vehicle.
// ROI is a percentage of the acquisition cost; vehicles acquired for free
// report 0.
type VehicleROIResponse struct {
	ID   kernel.UUID
	Name string
	ROI  float64
}

// GetFleetMetricsQueryResponse is the fleet metrics read model.
// All rates are percentages in [0, 100]; empty denominators report 0.
type GetFleetMetricsQueryResponse struct {
	VehicleROI      []VehicleROIResponse
	UtilizationRate float64
	ComplianceRate  float64
	NetProfit       float64
}
