package queries

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrGetLicenseExpiryReportQueryIsNotConstructed = errors.New(
		"GetLicenseExpiryReportQuery must be created via NewGetLicenseExpiryReportQuery constructor",
	)
)

// GetLicenseExpiryReportQuery retrieves every driver's license expiry status,
// most urgent first. Fleet managers use it to schedule license renewals before
// drivers drop out of the dispatchable pool.
type GetLicenseExpiryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLicenseExpiryReportQuery creates a query for the license expiry report.
func NewGetLicenseExpiryReportQuery() GetLicenseExpiryReportQuery {
	return GetLicenseExpiryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLicenseExpiryReportQueryIsNotConstructed if validation fails.
func (q GetLicenseExpiryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetLicenseExpiryReportQueryIsNotConstructed)
}

// GetLicenseExpiryReportQueryResponse represents one driver's license standing.
// DaysRemaining counts whole calendar days and is negative once the license has
// expired. Bucket is the renewal urgency classification.
type GetLicenseExpiryReportQueryResponse struct {
	ID            kernel.UUID
	Name          string
	LicenseExpiry time.Time
	DaysRemaining int
	Bucket        driver.ExpiryBucket
}
