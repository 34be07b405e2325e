// Package triprepo provides data transfer objects and mapping functions for trip persistence.
package triprepo

import (
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// VehicleID and Status are indexed because the metrics query aggregates
// completed-trip revenue per vehicle.
type TripDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID `gorm:"type:uuid;index"`
	DriverID    uuid.UUID `gorm:"type:uuid;index"`
	CargoWeight int
	Revenue     float64
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(t *trip.Trip) TripDTO {
	return TripDTO{
		ID:          t.ID().Bytes(),
		VehicleID:   t.VehicleID().Bytes(),
		DriverID:    t.DriverID().Bytes(),
		CargoWeight: t.CargoWeight(),
		Revenue:     t.Revenue(),
		Status:      int(t.Status()),
	}
}

// toDomain converts a database DTO to a trip domain aggregate using RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(id, vehicleID, driverID, dto.CargoWeight, dto.Revenue, trip.Status(dto.Status))
}
