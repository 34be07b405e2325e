package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/vehicle"
)

// RegisterVehicleCommandHandler handles the business logic for vehicle registration.
// New vehicles start in Available status and join the dispatch pool immediately.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration operations.
// Requires a VehicleUoWFactory for transactional persistence.
func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Creates the vehicle in Available status inside a transaction.
func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
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

	v, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.Name(),
		cmd.Plate(),
		cmd.Kind(),
		cmd.MaxLoad(),
		cmd.Odometer(),
		cmd.AcquisitionCost(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
