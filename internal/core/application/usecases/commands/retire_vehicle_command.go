package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrRetireVehicleCommandIsNotConstructed = errors.New(
	"RetireVehicleCommand must be created via NewRetireVehicleCommand constructor",
)

// RetireVehicleCommand represents a request to permanently remove a vehicle from
// service. Retirement is terminal: the record stays for reporting, but no status
// transition can ever leave Retired.
type RetireVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetireVehicleCommand creates a command to retire a vehicle.
func NewRetireVehicleCommand(vehicleID kernel.UUID) (RetireVehicleCommand, error) {
	cmd := RetireVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return RetireVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRetireVehicleCommandIsNotConstructed if validation fails.
func (c RetireVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRetireVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to retire.
func (c RetireVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *RetireVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
