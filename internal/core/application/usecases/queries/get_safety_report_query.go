package queries

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

// Safety score classification thresholds. Scores below HighRiskThreshold flag
// a driver for review; scores at or above SafetyCompliantThreshold meet the
// fleet safety target.
const (
	HighRiskThreshold        = 70.0
	SafetyCompliantThreshold = 85.0
)

var (
	ErrGetSafetyReportQueryIsNotConstructed = errors.New(
		"GetSafetyReportQuery must be created via NewGetSafetyReportQuery constructor",
	)
)

// GetSafetyReportQuery retrieves a per-driver safety score overview with
// fleet-level aggregates.
type GetSafetyReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSafetyReportQuery creates a query for the safety report.
func NewGetSafetyReportQuery() GetSafetyReportQuery {
	return GetSafetyReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSafetyReportQueryIsNotConstructed if validation fails.
func (q GetSafetyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSafetyReportQueryIsNotConstructed)
}

// DriverSafetyResponse carries one driver's safety score.
type DriverSafetyResponse struct {
	ID    kernel.UUID
	Name  string
	Score float64
}

// GetSafetyReportQueryResponse is the safety report read model. AverageScore
// is 0 for an empty roster.
type GetSafetyReportQueryResponse struct {
	Drivers        []DriverSafetyResponse
	AverageScore   float64
	HighRiskCount  int
	CompliantCount int
}
