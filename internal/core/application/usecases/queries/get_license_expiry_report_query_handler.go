package queries

import (
	"context"
	"sort"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLicenseExpiryReportQueryHandler builds the license expiry report from the
// database. Day counts and urgency buckets are computed through the driver
// aggregate so the report can never disagree with dispatch eligibility.
type GetLicenseExpiryReportQueryHandler struct {
	db *gorm.DB
}

// NewGetLicenseExpiryReportQueryHandler creates a handler for license expiry
// report queries.
func NewGetLicenseExpiryReportQueryHandler(db *gorm.DB) GetLicenseExpiryReportQueryHandler {
	return GetLicenseExpiryReportQueryHandler{db: db}
}

// Handle executes the query and returns one entry per driver, sorted by days
// remaining ascending with ties broken by driver ID.
func (h GetLicenseExpiryReportQueryHandler) Handle(
	ctx context.Context,
	query GetLicenseExpiryReportQuery,
) ([]GetLicenseExpiryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := make([]GetLicenseExpiryReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			license_expiry,
			status
		FROM drivers
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var licenseExpiry time.Time
		var status int

		err = rows.Scan(&id, &name, &licenseExpiry, &status)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		aggregate, restoreErr := driver.RestoreDriver(driverID, name, licenseExpiry, driver.Status(status))
		if restoreErr != nil {
			return nil, restoreErr
		}

		report = append(report, GetLicenseExpiryReportQueryResponse{
			ID:            aggregate.ID(),
			Name:          aggregate.Name(),
			LicenseExpiry: aggregate.LicenseExpiry(),
			DaysRemaining: aggregate.DaysUntilExpiry(now),
			Bucket:        aggregate.ExpiryBucketAt(now),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(report, func(i, j int) bool {
		if report[i].DaysRemaining != report[j].DaysRemaining {
			return report[i].DaysRemaining < report[j].DaysRemaining
		}
		return report[i].ID.String() < report[j].ID.String()
	})

	return report, nil
}
