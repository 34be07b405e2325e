package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrRegisterVehicleCommandIsNotConstructed = errors.New(
		"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
	)
	ErrVehicleNameIsRequired    = errors.New("vehicle name is required")
	ErrPlateIsRequired          = errors.New("plate is required")
	ErrMaxLoadIsInvalid         = errors.New("max load must be greater than 0")
	ErrOdometerIsInvalid        = errors.New("odometer must not be negative")
	ErrAcquisitionCostIsInvalid = errors.New("acquisition cost must not be negative")
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
// New vehicles enter the dispatch pool immediately as Available.
//
// Example:
//
//	vehicleID := kernel.NewUUID()
//	cmd, err := NewRegisterVehicleCommand(vehicleID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 0, 85000)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewRegisterVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID       kernel.UUID
	name            string
	plate           string
	kind            vehicle.Kind
	maxLoad         int
	odometer        int
	acquisitionCost float64

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a new fleet vehicle.
// Validates identity, naming, capacity, and cost fields up front so handlers only
// see well-formed requests.
func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	name string,
	plate string,
	kind vehicle.Kind,
	maxLoad int,
	odometer int,
	acquisitionCost float64,
) (RegisterVehicleCommand, error) {
	cmd := RegisterVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setName(name),
		cmd.setPlate(plate),
		cmd.setKind(kind),
		cmd.setMaxLoad(maxLoad),
		cmd.setOdometer(odometer),
		cmd.setAcquisitionCost(acquisitionCost),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterVehicleCommandIsNotConstructed if validation fails.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the new vehicle.
func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Name returns the vehicle's display name.
func (c RegisterVehicleCommand) Name() string {
	return c.name
}

// Plate returns the registration plate.
func (c RegisterVehicleCommand) Plate() string {
	return c.plate
}

// Kind returns the vehicle category.
func (c RegisterVehicleCommand) Kind() vehicle.Kind {
	return c.kind
}

// MaxLoad returns the cargo capacity in kilograms.
func (c RegisterVehicleCommand) MaxLoad() int {
	return c.maxLoad
}

// Odometer returns the initial odometer reading in kilometres.
func (c RegisterVehicleCommand) Odometer() int {
	return c.odometer
}

// AcquisitionCost returns what the fleet paid for the vehicle.
func (c RegisterVehicleCommand) AcquisitionCost() float64 {
	return c.acquisitionCost
}

func (c *RegisterVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *RegisterVehicleCommand) setName(name string) error {
	if name == "" {
		return ErrVehicleNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *RegisterVehicleCommand) setKind(kind vehicle.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RegisterVehicleCommand) setMaxLoad(maxLoad int) error {
	if maxLoad <= 0 {
		return ErrMaxLoadIsInvalid
	}

	c.maxLoad = maxLoad
	return nil
}

func (c *RegisterVehicleCommand) setOdometer(odometer int) error {
	if odometer < 0 {
		return ErrOdometerIsInvalid
	}

	c.odometer = odometer
	return nil
}

func (c *RegisterVehicleCommand) setAcquisitionCost(cost float64) error {
	if cost < 0 {
		return ErrAcquisitionCostIsInvalid
	}

	c.acquisitionCost = cost
	return nil
}
