package expense

import (
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
)

var (
	// ErrExpenseIsNotConstructed is returned when an Expense instance was not
	// created through a factory method.
	ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewFuelExpense or NewMaintenanceExpense constructor")
)

// Expense is an append-only record of money spent on a vehicle. Expenses are never
// updated or deleted once recorded; corrections are new records.
type Expense struct {
	// id is the unique identifier for the expense
	id kernel.UUID

	// vehicleID references the vehicle the expense belongs to
	vehicleID kernel.UUID

	// kind categorizes the expense
	kind Kind

	// amount is the total cost
	amount float64

	// liters is the fuel volume purchased. Set for Fuel expenses only.
	liters *float64

	// createdAt is when the expense was recorded
	createdAt time.Time

	// isConstructed ensures the expense was created via a factory method
	isConstructed bool
}

// NewFuelExpense records a refuelling. The amount is derived from the purchased
// volume and the price per litre.
func NewFuelExpense(id kernel.UUID, vehicleID kernel.UUID, liters float64, pricePerLiter float64, createdAt time.Time) (*Expense, error) {
	e := &Expense{
		kind:          Fuel,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setVehicleID(vehicleID),
		e.setLiters(liters),
		e.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if pricePerLiter <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price per liter",
			fmt.Errorf("%v is not greater than 0", pricePerLiter))
	}
	e.amount = liters * pricePerLiter

	return e, nil
}

// NewMaintenanceExpense records a repair or servicing cost.
func NewMaintenanceExpense(id kernel.UUID, vehicleID kernel.UUID, amount float64, createdAt time.Time) (*Expense, error) {
	e := &Expense{
		kind:          Maintenance,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setVehicleID(vehicleID),
		e.setAmount(amount),
		e.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreExpense reconstructs an expense from persistence.
func RestoreExpense(id kernel.UUID, vehicleID kernel.UUID, kind Kind, amount float64, liters *float64, createdAt time.Time) (*Expense, error) {
	e := &Expense{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setVehicleID(vehicleID),
		kind.Validate(),
		e.setAmount(amount),
		e.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	e.kind = kind

	switch kind {
	case Fuel:
		if liters == nil {
			return nil, errs.NewValueIsRequiredError("liters")
		}
		if err := e.setLiters(*liters); err != nil {
			return nil, err
		}
	default:
		if liters != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("liters",
				fmt.Errorf("must not be set for %s expenses", kind))
		}
	}

	return e, nil
}

// Validate ensures the Expense instance was properly constructed through a factory
// method.
func (e *Expense) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExpenseIsNotConstructed
	}
	return nil
}

// IsEqual compares two expenses by their unique identifiers.
func (e *Expense) IsEqual(other *Expense) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the expense's unique identifier.
func (e *Expense) ID() kernel.UUID {
	return e.id
}

// VehicleID returns the identifier of the vehicle the expense belongs to.
func (e *Expense) VehicleID() kernel.UUID {
	return e.vehicleID
}

// Kind returns the expense category.
func (e *Expense) Kind() Kind {
	return e.kind
}

// Amount returns the total cost of the expense.
func (e *Expense) Amount() float64 {
	return e.amount
}

// Liters returns the fuel volume purchased, or nil for non-fuel expenses.
func (e *Expense) Liters() *float64 {
	return e.liters
}

// CreatedAt returns when the expense was recorded.
func (e *Expense) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Expense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Expense) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle ID", err)
	}
	e.vehicleID = id
	return nil
}

func (e *Expense) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	e.amount = amount
	return nil
}

func (e *Expense) setLiters(liters float64) error {
	if liters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("liters", fmt.Errorf("%v is not greater than 0", liters))
	}
	e.liters = &liters
	return nil
}

func (e *Expense) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	e.createdAt = createdAt
	return nil
}
