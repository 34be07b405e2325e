package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrLogFuelCommandIsNotConstructed = errors.New(
		"LogFuelCommand must be created via NewLogFuelCommand constructor",
	)
	ErrLitersIsInvalid        = errors.New("liters must be greater than 0")
	ErrPricePerLiterIsInvalid = errors.New("price per liter must be greater than 0")
)

// LogFuelCommand represents a request to record a refuelling. The expense amount
// is derived as liters times price per liter; fuel logging never changes the
// vehicle's status.
type LogFuelCommand struct { //nolint:recvcheck //using for validation
	expenseID     kernel.UUID
	vehicleID     kernel.UUID
	liters        float64
	pricePerLiter float64
	date          time.Time

	guard guard.ConstructorGuard
}

// NewLogFuelCommand creates a command to log a fuel expense.
func NewLogFuelCommand(
	expenseID kernel.UUID,
	vehicleID kernel.UUID,
	liters float64,
	pricePerLiter float64,
	date time.Time,
) (LogFuelCommand, error) {
	cmd := LogFuelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExpenseID(expenseID),
		cmd.setVehicleID(vehicleID),
		cmd.setLiters(liters),
		cmd.setPricePerLiter(pricePerLiter),
		cmd.setDate(date),
	); err != nil {
		return LogFuelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogFuelCommandIsNotConstructed if validation fails.
func (c LogFuelCommand) Validate() error {
	return c.guard.Validate(ErrLogFuelCommandIsNotConstructed)
}

// ExpenseID returns the unique identifier for the new expense record.
func (c LogFuelCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

// VehicleID returns the identifier of the refuelled vehicle.
func (c LogFuelCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Liters returns the fuel volume purchased.
func (c LogFuelCommand) Liters() float64 {
	return c.liters
}

// PricePerLiter returns the unit price paid.
func (c LogFuelCommand) PricePerLiter() float64 {
	return c.pricePerLiter
}

// Date returns when the refuelling happened.
func (c LogFuelCommand) Date() time.Time {
	return c.date
}

func (c *LogFuelCommand) setExpenseID(expenseID kernel.UUID) error {
	if err := expenseID.Validate(); err != nil {
		return err
	}

	c.expenseID = expenseID
	return nil
}

func (c *LogFuelCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *LogFuelCommand) setLiters(liters float64) error {
	if liters <= 0 {
		return ErrLitersIsInvalid
	}

	c.liters = liters
	return nil
}

func (c *LogFuelCommand) setPricePerLiter(price float64) error {
	if price <= 0 {
		return ErrPricePerLiterIsInvalid
	}

	c.pricePerLiter = price
	return nil
}

func (c *LogFuelCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	c.date = date
	return nil
}
