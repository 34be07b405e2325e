package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/services"
)

// LogMaintenanceCommandHandler handles maintenance logging.
// The expense record and the vehicle's move to In Shop commit in one
// transaction; a vehicle already In Shop stays there and simply accumulates
// another work order. Retired vehicles reject maintenance.
type LogMaintenanceCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

// NewLogMaintenanceCommandHandler creates a handler for maintenance logging.
// Requires an ExpenseUoWFactory spanning expense and vehicle repositories.
func NewLogMaintenanceCommandHandler(uowFactory ExpenseUoWFactory) LogMaintenanceCommandHandler {
	return LogMaintenanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the maintenance logging command.
func (h LogMaintenanceCommandHandler) Handle(ctx context.Context, cmd LogMaintenanceCommand) error {
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

	if err = services.NewTripValidator().ValidateMaintenanceLog(v); err != nil {
		return err
	}

	e, err := expense.NewMaintenanceExpense(cmd.ExpenseID(), cmd.VehicleID(), cmd.Amount(), cmd.Date())
	if err != nil {
		return err
	}

	if err = uow.ExpenseRepository().Add(ctx, e); err != nil {
		return err
	}

	observedStatus := v.Status()
	if err = v.SendToShop(); err != nil {
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
