package ports

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
// Status changes are conditional on the status the caller last observed so that
// concurrent transitions of the same trip cannot both succeed.
type TripRepository interface {
	// Add persists a new trip aggregate to storage.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// UpdateIfStatus persists changes to an existing trip only while its stored
	// status still equals expected. Returns errs.ErrPreconditionFailed when a
	// concurrent writer changed the status first.
	UpdateIfStatus(ctx context.Context, aggregate *trip.Trip, expected trip.Status) error

	// Get retrieves a trip aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetAllByVehicle retrieves every trip assigned to the given vehicle.
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*trip.Trip, error)
}
