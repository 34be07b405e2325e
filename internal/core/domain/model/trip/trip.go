package trip

import (
	"errors"
	"fmt"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created
	// through the NewTrip or RestoreTrip factory methods.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
)

// Trip represents a single revenue-earning journey assigned to a vehicle and a
// driver.
//
// Trip follows these invariants:
//   - Must have a valid unique identifier and valid vehicle and driver references
//   - Cargo weight must be positive, revenue non-negative
//   - Status moves strictly forward through the lifecycle; once Completed or
//     Cancelled no further transitions are possible
//
// Whether the assigned vehicle and driver are fit for the trip is a dispatch rule,
// not a trip invariant: it is enforced by the domain services at creation time.
type Trip struct {
	// id is the unique identifier for the trip
	id kernel.UUID

	// vehicleID references the assigned vehicle
	vehicleID kernel.UUID

	// driverID references the assigned driver
	driverID kernel.UUID

	// cargoWeight is the load carried, in kilograms
	cargoWeight int

	// revenue is the amount earned when the trip completes
	revenue float64

	// status tracks the trip through its lifecycle
	status Status

	// isConstructed ensures the trip was created via a factory method
	isConstructed bool
}

// NewTrip creates a trip in Draft with validation of all parameters.
func NewTrip(id kernel.UUID, vehicleID kernel.UUID, driverID kernel.UUID, cargoWeight int, revenue float64) (*Trip, error) {
	t := &Trip{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setVehicleID(vehicleID),
		t.setDriverID(driverID),
		t.setCargoWeight(cargoWeight),
		t.setRevenue(revenue),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a trip from persistence, including the stored status.
func RestoreTrip(id kernel.UUID, vehicleID kernel.UUID, driverID kernel.UUID, cargoWeight int, revenue float64, status Status) (*Trip, error) {
	t, err := NewTrip(id, vehicleID, driverID, cargoWeight, revenue)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	t.status = status

	return t, nil
}

// Validate ensures the Trip instance was properly constructed through a factory
// method.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// VehicleID returns the assigned vehicle's identifier.
func (t *Trip) VehicleID() kernel.UUID {
	return t.vehicleID
}

// DriverID returns the assigned driver's identifier.
func (t *Trip) DriverID() kernel.UUID {
	return t.driverID
}

// CargoWeight returns the load carried, in kilograms.
func (t *Trip) CargoWeight() int {
	return t.cargoWeight
}

// Revenue returns the amount the trip earns on completion.
func (t *Trip) Revenue() float64 {
	return t.revenue
}

// Status returns the current lifecycle status.
func (t *Trip) Status() Status {
	return t.status
}

// Dispatch moves the trip from Draft to Dispatched.
func (t *Trip) Dispatch() error {
	status, err := t.status.Dispatch()
	if err != nil {
		return err
	}
	t.status = status
	return nil
}

// Complete moves the trip from Dispatched to Completed.
func (t *Trip) Complete() error {
	status, err := t.status.Complete()
	if err != nil {
		return err
	}
	t.status = status
	return nil
}

// Cancel moves the trip to Cancelled from Draft or Dispatched. The caller is
// responsible for releasing the vehicle when cancelling a dispatched trip.
func (t *Trip) Cancel() error {
	status, err := t.status.Cancel()
	if err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle ID", err)
	}
	t.vehicleID = id
	return nil
}

func (t *Trip) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver ID", err)
	}
	t.driverID = id
	return nil
}

func (t *Trip) setCargoWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cargo weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	t.cargoWeight = weight
	return nil
}

func (t *Trip) setRevenue(revenue float64) error {
	if revenue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("revenue", fmt.Errorf("%v is negative", revenue))
	}
	t.revenue = revenue
	return nil
}
