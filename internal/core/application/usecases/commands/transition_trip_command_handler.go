package commands

import (
	"context"
	"errors"
	"fmt"

	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"
)

// TransitionTripCommandHandler handles trip lifecycle transitions and their
// vehicle cascades:
//
//   - Dispatched: vehicle moves Available -> On Trip
//   - Completed: vehicle moves On Trip -> Available
//   - Cancelled from Dispatched: vehicle moves On Trip -> Available, so a
//     cancelled trip never strands its vehicle on the road
//
// The trip write and the cascade commit in one transaction, and both writes are
// conditional on the status each entity had when it was read. A concurrent
// transition of the same trip or vehicle makes the conditional write fail with
// errs.ErrPreconditionFailed instead of silently overwriting.
type TransitionTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewTransitionTripCommandHandler creates a handler for trip transitions.
// Requires a TripUoWFactory spanning trip and vehicle repositories.
func NewTransitionTripCommandHandler(uowFactory TripUoWFactory) TransitionTripCommandHandler {
	return TransitionTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip transition command.
func (h TransitionTripCommandHandler) Handle(ctx context.Context, cmd TransitionTripCommand) error {
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

	tripRepo := uow.TripRepository()

	t, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}
	observedStatus := t.Status()

	releaseVehicle := false
	switch cmd.Target() {
	case trip.Dispatched:
		if err = t.Dispatch(); err != nil {
			return err
		}
		if err = h.dispatchVehicle(ctx, uow, t); err != nil {
			return err
		}
	case trip.Completed:
		if err = t.Complete(); err != nil {
			return err
		}
		releaseVehicle = true
	case trip.Cancelled:
		if err = t.Cancel(); err != nil {
			return err
		}
		releaseVehicle = observedStatus == trip.Dispatched
	default:
		return fmt.Errorf("%w: %s", ErrTargetStatusIsInvalid, cmd.Target())
	}

	if releaseVehicle {
		if err = h.releaseVehicle(ctx, uow, t); err != nil {
			return err
		}
	}

	if err = tripRepo.UpdateIfStatus(ctx, t, observedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// dispatchVehicle re-validates vehicle availability against the state read inside
// this transaction and moves the vehicle onto the road. Losers of a dispatch race
// fail here with ErrVehicleUnavailable, or on the conditional write if the other
// transaction commits between our read and our update.
func (h TransitionTripCommandHandler) dispatchVehicle(ctx context.Context, uow TripUoW, t *trip.Trip) error {
	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.Get(ctx, t.VehicleID())
	if err != nil {
		return err
	}
	observedStatus := v.Status()

	if err = v.Dispatch(); err != nil {
		if errors.Is(err, vehicle.ErrIllegalTransition) {
			return fmt.Errorf("%w: status is %s", services.ErrVehicleUnavailable, observedStatus)
		}
		return err
	}

	return vehicleRepo.UpdateIfStatus(ctx, v, observedStatus)
}

// releaseVehicle returns the trip's vehicle to the dispatch pool.
func (h TransitionTripCommandHandler) releaseVehicle(ctx context.Context, uow TripUoW, t *trip.Trip) error {
	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.Get(ctx, t.VehicleID())
	if err != nil {
		return err
	}
	observedStatus := v.Status()

	if err = v.Release(); err != nil {
		return err
	}

	return vehicleRepo.UpdateIfStatus(ctx, v, observedStatus)
}
