package commands

import (
	"context"
	"time"

	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/services"
)

// CreateTripCommandHandler handles the business logic for trip creation.
// The dispatch rules (capacity, vehicle availability, driver eligibility) are
// checked inside the write transaction so that two dispatchers racing for the
// same vehicle cannot both succeed. The trip is created in Draft; the vehicle is
// not touched until the trip is dispatched.
type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCreateTripCommandHandler creates a handler for trip creation operations.
// Requires a TripUoWFactory spanning trip, vehicle, and driver repositories.
func NewCreateTripCommandHandler(uowFactory TripUoWFactory) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip creation command.
// Loads the vehicle and driver, runs the dispatch rules against their current
// state, and persists the Draft trip in the same transaction.
func (h CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	validator := services.NewTripValidator()
	if err = validator.ValidateTripCreation(v, d, cmd.CargoWeight(), time.Now()); err != nil {
		return err
	}

	t, err := trip.NewTrip(cmd.TripID(), cmd.VehicleID(), cmd.DriverID(), cmd.CargoWeight(), cmd.Revenue())
	if err != nil {
		return err
	}

	if err = uow.TripRepository().Add(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
