package ports

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// UpdateIfStatus persists changes to an existing driver aggregate, but only
	// when the stored duty status still equals expected. Returns an error
	// wrapping errs.ErrPreconditionFailed when the stored status has moved on.
	UpdateIfStatus(ctx context.Context, aggregate *driver.Driver, expected driver.Status) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves every driver on the roster.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
