package services

import (
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/vehicle"
)

var (
	// ErrVehicleUnavailable is returned when a trip is created against a vehicle
	// that is not Available: it may be on a trip, in the shop, or retired.
	ErrVehicleUnavailable = errors.New("vehicle is not available for dispatch")

	// ErrDriverIneligible is returned when a trip is created against a driver who
	// is not on duty or whose license has expired.
	ErrDriverIneligible = errors.New("driver is not eligible for dispatch")

	// ErrVehicleRetired is returned when maintenance is logged against a retired
	// vehicle.
	ErrVehicleRetired = errors.New("vehicle is retired")
)

// CapacityExceededError indicates that a trip's cargo does not fit the assigned
// vehicle. Both weights are retained so callers can report the shortfall.
type CapacityExceededError struct {
	CargoWeight int
	MaxLoad     int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("cargo weight %d exceeds vehicle max load %d", e.CargoWeight, e.MaxLoad)
}

// NewCapacityExceededError creates a CapacityExceededError carrying the offending
// cargo weight and the vehicle's limit.
func NewCapacityExceededError(cargoWeight, maxLoad int) *CapacityExceededError {
	return &CapacityExceededError{CargoWeight: cargoWeight, MaxLoad: maxLoad}
}

// TripValidator is a domain service enforcing the dispatch rules that span a
// vehicle and a driver. The rules are pure functions of the current entity
// snapshots and wall-clock time; callers re-run them inside the write transaction
// so concurrent dispatches cannot both win.
//
// Business rules:
//   - Cargo must not exceed the vehicle's max load; a cargo exactly at the limit
//     is allowed
//   - The vehicle must be Available
//   - The driver must be on duty with a license expiring strictly in the future
type TripValidator struct{}

// NewTripValidator creates a new TripValidator instance.
func NewTripValidator() TripValidator {
	return TripValidator{}
}

// ValidateTripCreation checks whether a trip with the given cargo may be created
// against the vehicle and driver at the given moment.
//
// Returns:
//   - *CapacityExceededError when the cargo exceeds the vehicle's max load
//   - ErrVehicleUnavailable when the vehicle is not Available
//   - ErrDriverIneligible when the driver cannot be dispatched
func (TripValidator) ValidateTripCreation(v *vehicle.Vehicle, d *driver.Driver, cargoWeight int, now time.Time) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	if cargoWeight > v.MaxLoad() {
		return NewCapacityExceededError(cargoWeight, v.MaxLoad())
	}

	if v.Status() != vehicle.Available {
		return fmt.Errorf("%w: status is %s", ErrVehicleUnavailable, v.Status())
	}

	if !d.IsEligible(now) {
		return fmt.Errorf("%w: status is %s, license expires %s",
			ErrDriverIneligible, d.Status(), d.LicenseExpiry().Format(time.DateOnly))
	}

	return nil
}

// ValidateMaintenanceLog checks whether maintenance may be logged against the
// vehicle. Only retirement blocks maintenance; a vehicle already in the shop may
// accumulate further work orders.
func (TripValidator) ValidateMaintenanceLog(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	if v.Status() == vehicle.Retired {
		return ErrVehicleRetired
	}

	return nil
}
