package commands

import (
	"context"
)

// CompleteMaintenanceCommandHandler returns a serviced vehicle to Available.
// Calling it twice in a row leaves the vehicle Available after both calls.
type CompleteMaintenanceCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCompleteMaintenanceCommandHandler creates a handler for completing maintenance.
// Requires a VehicleUoWFactory for transactional persistence.
func NewCompleteMaintenanceCommandHandler(uowFactory VehicleUoWFactory) CompleteMaintenanceCommandHandler {
	return CompleteMaintenanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-maintenance command.
// The status write is conditional on the status read inside this transaction.
func (h CompleteMaintenanceCommandHandler) Handle(ctx context.Context, cmd CompleteMaintenanceCommand) error {
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

	if err = v.CompleteMaintenance(); err != nil {
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
