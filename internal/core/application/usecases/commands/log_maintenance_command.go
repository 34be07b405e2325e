package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var (
	ErrLogMaintenanceCommandIsNotConstructed = errors.New(
		"LogMaintenanceCommand must be created via NewLogMaintenanceCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
	ErrDateIsRequired  = errors.New("date is required")
)

// LogMaintenanceCommand represents a request to record maintenance work on a
// vehicle. Logging maintenance pulls the vehicle out of the dispatch pool: the
// expense insert and the vehicle's move to In Shop commit together.
type LogMaintenanceCommand struct { //nolint:recvcheck //using for validation
	expenseID kernel.UUID
	vehicleID kernel.UUID
	amount    float64
	date      time.Time

	guard guard.ConstructorGuard
}

// NewLogMaintenanceCommand creates a command to log a maintenance expense.
func NewLogMaintenanceCommand(expenseID kernel.UUID, vehicleID kernel.UUID, amount float64, date time.Time) (LogMaintenanceCommand, error) {
	cmd := LogMaintenanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExpenseID(expenseID),
		cmd.setVehicleID(vehicleID),
		cmd.setAmount(amount),
		cmd.setDate(date),
	); err != nil {
		return LogMaintenanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogMaintenanceCommandIsNotConstructed if validation fails.
func (c LogMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrLogMaintenanceCommandIsNotConstructed)
}

// ExpenseID returns the unique identifier for the new expense record.
func (c LogMaintenanceCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

// VehicleID returns the identifier of the vehicle being serviced.
func (c LogMaintenanceCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Amount returns the maintenance cost.
func (c LogMaintenanceCommand) Amount() float64 {
	return c.amount
}

// Date returns when the maintenance was performed.
func (c LogMaintenanceCommand) Date() time.Time {
	return c.date
}

func (c *LogMaintenanceCommand) setExpenseID(expenseID kernel.UUID) error {
	if err := expenseID.Validate(); err != nil {
		return err
	}

	c.expenseID = expenseID
	return nil
}

func (c *LogMaintenanceCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *LogMaintenanceCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *LogMaintenanceCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	c.date = date
	return nil
}
