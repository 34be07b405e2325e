package commands

import (
	"context"
)

// RetireVehicleCommandHandler permanently removes a vehicle from service.
// The record is never deleted; Retired is a terminal status.
type RetireVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRetireVehicleCommandHandler creates a handler for vehicle retirement.
// Requires a VehicleUoWFactory for transactional persistence.
func NewRetireVehicleCommandHandler(uowFactory VehicleUoWFactory) RetireVehicleCommandHandler {
	return RetireVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retirement command.
// The status write is conditional on the status read inside this transaction, so
// retiring a vehicle that a concurrent dispatcher just sent on a trip fails
// rather than silently overwriting the dispatch.
func (h RetireVehicleCommandHandler) Handle(ctx context.Context, cmd RetireVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	observedStatus := v.Status()

	if err = v.Retire(); err != nil {
		return err
	}

	if err = vehicleRepo.UpdateIfStatus(ctx, v, observedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
