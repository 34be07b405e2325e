package ports

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Status is never written unconditionally: every update that changes status
// carries the status the caller last observed, and the write fails with
// errs.ErrPreconditionFailed when the stored row has moved on.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// UpdateIfStatus persists changes to an existing vehicle only while its
	// stored status still equals expected. Returns errs.ErrPreconditionFailed
	// when a concurrent writer changed the status first.
	UpdateIfStatus(ctx context.Context, aggregate *vehicle.Vehicle, expected vehicle.Status) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll retrieves every vehicle in the fleet, retired included.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}
