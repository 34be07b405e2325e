package vehicle

import (
	"errors"
	"fmt"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
	// through the NewVehicle or RestoreVehicle factory methods.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

	// ErrOdometerMovedBackwards is returned when an odometer update is lower than the
	// current reading. Odometer readings are monotonically non-decreasing.
	ErrOdometerMovedBackwards = errors.New("odometer reading cannot decrease")
)

// Vehicle represents a fleet vehicle. It is the aggregate root that manages the
// vehicle lifecycle from registration through trips and maintenance to retirement.
//
// Vehicle follows these invariants:
//   - Must have a valid unique identifier, non-empty name and plate
//   - Max load must be positive, odometer and acquisition cost non-negative
//   - Odometer readings never decrease
//   - Status transitions follow the table defined on Status
//   - Retirement is terminal; vehicles are never physically deleted
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Vehicle struct {
	// id is the unique identifier for the vehicle
	id kernel.UUID

	// name is the operator-facing display name
	name string

	// plate is the registration plate, unique across the fleet
	plate string

	// kind classifies the vehicle body type
	kind Kind

	// maxLoad is the cargo capacity in kilograms (must be positive)
	maxLoad int

	// odometer is the current reading in kilometers (non-decreasing)
	odometer int

	// acquisitionCost is the purchase price used for ROI computation
	acquisitionCost float64

	// status represents the current state in the vehicle lifecycle
	status Status

	// isConstructed ensures the vehicle was created via a factory method
	isConstructed bool
}

// NewVehicle registers a new vehicle with validation. This is the only way to create
// a valid Vehicle for a fresh registration; the vehicle starts in Available status.
//
// Returns a validation error if any parameter is invalid.
func NewVehicle(
	id kernel.UUID,
	name, plate string,
	kind Kind,
	maxLoad, odometer int,
	acquisitionCost float64,
) (*Vehicle, error) {
	v := &Vehicle{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setPlate(plate),
		v.setKind(kind),
		v.setMaxLoad(maxLoad),
		v.setOdometer(odometer),
		v.setAcquisitionCost(acquisitionCost),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence, including its stored status.
// Used by repositories when rehydrating aggregates; validates the same invariants as
// NewVehicle plus the status value.
func RestoreVehicle(
	id kernel.UUID,
	name, plate string,
	kind Kind,
	maxLoad, odometer int,
	acquisitionCost float64,
	status Status,
) (*Vehicle, error) {
	v, err := NewVehicle(id, name, plate, kind, maxLoad, odometer, acquisitionCost)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	v.status = status

	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed through a factory
// method. This prevents bypassing validation by directly instantiating the struct.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the vehicle's display name.
func (v *Vehicle) Name() string {
	return v.name
}

// Plate returns the vehicle's registration plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Kind returns the vehicle's body type.
func (v *Vehicle) Kind() Kind {
	return v.kind
}

// MaxLoad returns the cargo capacity in kilograms.
func (v *Vehicle) MaxLoad() int {
	return v.maxLoad
}

// Odometer returns the current odometer reading in kilometers.
func (v *Vehicle) Odometer() int {
	return v.odometer
}

// AcquisitionCost returns the vehicle's purchase price.
func (v *Vehicle) AcquisitionCost() float64 {
	return v.acquisitionCost
}

// Status returns the current status of the vehicle.
func (v *Vehicle) Status() Status {
	return v.status
}

// Dispatch moves the vehicle from Available to OnTrip.
// Triggered by a trip transitioning from Draft to Dispatched.
func (v *Vehicle) Dispatch() error {
	newStatus, err := v.status.Dispatch()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// Release moves the vehicle from OnTrip back to Available.
// Triggered by a dispatched trip completing or being cancelled.
func (v *Vehicle) Release() error {
	newStatus, err := v.status.Release()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// SendToShop moves the vehicle to InShop when a maintenance expense is logged.
// Logging maintenance on a vehicle already in the shop is a no-op.
func (v *Vehicle) SendToShop() error {
	newStatus, err := v.status.SendToShop()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// CompleteMaintenance moves the vehicle from InShop back to Available.
// Completing maintenance on an Available vehicle is a no-op, not an error, so the
// operation is safe to repeat.
func (v *Vehicle) CompleteMaintenance() error {
	newStatus, err := v.status.CompleteMaintenance()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// Retire moves the vehicle to the terminal Retired status.
// Allowed from any non-Retired status; a retired vehicle never transitions again.
func (v *Vehicle) Retire() error {
	newStatus, err := v.status.Retire()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// UpdateOdometer records a new odometer reading.
// Readings are monotonically non-decreasing; a lower reading is rejected.
func (v *Vehicle) UpdateOdometer(reading int) error {
	if reading < v.odometer {
		return fmt.Errorf("%w: %d is below current reading %d", ErrOdometerMovedBackwards, reading, v.odometer)
	}
	v.odometer = reading
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	v.kind = kind
	return nil
}

func (v *Vehicle) setMaxLoad(maxLoad int) error {
	if maxLoad <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max load", fmt.Errorf("%d is not greater than 0", maxLoad))
	}
	v.maxLoad = maxLoad
	return nil
}

func (v *Vehicle) setOdometer(odometer int) error {
	if odometer < 0 {
		return errs.NewValueIsInvalidErrorWithCause("odometer", fmt.Errorf("%d is negative", odometer))
	}
	v.odometer = odometer
	return nil
}

func (v *Vehicle) setAcquisitionCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("acquisition cost", fmt.Errorf("%f is negative", cost))
	}
	v.acquisitionCost = cost
	return nil
}
