package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrCompleteMaintenanceCommandIsNotConstructed = errors.New(
	"CompleteMaintenanceCommand must be created via NewCompleteMaintenanceCommand constructor",
)

// CompleteMaintenanceCommand represents a request to return a serviced vehicle to
// the dispatch pool. The operation is idempotent: completing maintenance on an
// already Available vehicle is a no-op, not an error.
type CompleteMaintenanceCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteMaintenanceCommand creates a command to mark maintenance completed.
func NewCompleteMaintenanceCommand(vehicleID kernel.UUID) (CompleteMaintenanceCommand, error) {
	cmd := CompleteMaintenanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return CompleteMaintenanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteMaintenanceCommandIsNotConstructed if validation fails.
func (c CompleteMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMaintenanceCommandIsNotConstructed)
}

// VehicleID returns the identifier of the serviced vehicle.
func (c CompleteMaintenanceCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *CompleteMaintenanceCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
