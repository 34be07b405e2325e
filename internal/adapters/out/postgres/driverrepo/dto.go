// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// LicenseExpiry is indexed for the compliance report, which scans by expiry date.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	LicenseExpiry time.Time `gorm:"index"`
	Status        int
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		Name:          d.Name(),
		LicenseExpiry: d.LicenseExpiry(),
		Status:        int(d.Status()),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.LicenseExpiry, driver.Status(dto.Status))
}
