// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// This package implements the repository pattern for the vehicle domain aggregate, handling
// the conversion between domain entities and database representations.
package vehiclerepo

import (
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// Status is indexed because dispatch queries filter the Available pool and the
// fleet metrics query counts by status.
type VehicleDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Plate           string `gorm:"uniqueIndex"`
	Kind            int
	MaxLoad         int
	Odometer        int
	AcquisitionCost float64
	Status          int `gorm:"index"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:              v.ID().Bytes(),
		Name:            v.Name(),
		Plate:           v.Plate(),
		Kind:            int(v.Kind()),
		MaxLoad:         v.MaxLoad(),
		Odometer:        v.Odometer(),
		AcquisitionCost: v.AcquisitionCost(),
		Status:          int(v.Status()),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Name,
		dto.Plate,
		vehicle.Kind(dto.Kind),
		dto.MaxLoad,
		dto.Odometer,
		dto.AcquisitionCost,
		vehicle.Status(dto.Status),
	)
}
