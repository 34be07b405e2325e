package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"
)

// LogFuelCommandHandler handles fuel expense logging.
// Fuel purchases go into the append-only ledger without any vehicle cascade, but
// the vehicle must exist and the write still runs transactionally.
type LogFuelCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

// NewLogFuelCommandHandler creates a handler for fuel logging operations.
// Requires an ExpenseUoWFactory spanning expense and vehicle repositories.
func NewLogFuelCommandHandler(uowFactory ExpenseUoWFactory) LogFuelCommandHandler {
	return LogFuelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fuel logging command.
func (h LogFuelCommandHandler) Handle(ctx context.Context, cmd LogFuelCommand) error {
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

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	e, err := expense.NewFuelExpense(cmd.ExpenseID(), cmd.VehicleID(), cmd.Liters(), cmd.PricePerLiter(), cmd.Date())
	if err != nil {
		return err
	}

	if err = uow.ExpenseRepository().Add(ctx, e); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
