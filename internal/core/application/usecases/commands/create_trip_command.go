package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrCreateTripCommandIsNotConstructed = errors.New(
		"CreateTripCommand must be created via NewCreateTripCommand constructor",
	)
	ErrCargoWeightIsInvalid = errors.New("cargo weight must be greater than 0")
	ErrRevenueIsInvalid     = errors.New("revenue must not be negative")
)

// CreateTripCommand represents a request to create a trip in Draft status.
// The dispatch rules run against the assigned vehicle and driver inside the
// handler's transaction, so the command only checks shape, not fleet state.
//
// Example:
//
//	cmd, err := NewCreateTripCommand(kernel.NewUUID(), vehicleID, driverID, 1500, 320.50)
//	if err != nil {
//	    return fmt.Errorf("invalid trip data: %w", err)
//	}
//
//	handler := NewCreateTripCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	var capacityErr *services.CapacityExceededError
//	switch {
//	case errors.As(err, &capacityErr):
//	    log.Printf("cargo %d over limit %d", capacityErr.CargoWeight, capacityErr.MaxLoad)
//	case errors.Is(err, services.ErrVehicleUnavailable):
//	    log.Println("vehicle busy")
//	}
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID      kernel.UUID
	vehicleID   kernel.UUID
	driverID    kernel.UUID
	cargoWeight int
	revenue     float64

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a command to create a new trip.
// Validates identifiers, cargo weight, and revenue.
func NewCreateTripCommand(
	tripID kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	cargoWeight int,
	revenue float64,
) (CreateTripCommand, error) {
	cmd := CreateTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
		cmd.setCargoWeight(cargoWeight),
		cmd.setRevenue(revenue),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTripCommandIsNotConstructed if validation fails.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// TripID returns the unique identifier for the new trip.
func (c CreateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// VehicleID returns the assigned vehicle's identifier.
func (c CreateTripCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverID returns the assigned driver's identifier.
func (c CreateTripCommand) DriverID() kernel.UUID {
	return c.driverID
}

// CargoWeight returns the load to carry, in kilograms.
func (c CreateTripCommand) CargoWeight() int {
	return c.cargoWeight
}

// Revenue returns the amount the trip earns on completion.
func (c CreateTripCommand) Revenue() float64 {
	return c.revenue
}

func (c *CreateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *CreateTripCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateTripCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateTripCommand) setCargoWeight(cargoWeight int) error {
	if cargoWeight <= 0 {
		return ErrCargoWeightIsInvalid
	}

	c.cargoWeight = cargoWeight
	return nil
}

func (c *CreateTripCommand) setRevenue(revenue float64) error {
	if revenue < 0 {
		return ErrRevenueIsInvalid
	}

	c.revenue = revenue
	return nil
}
