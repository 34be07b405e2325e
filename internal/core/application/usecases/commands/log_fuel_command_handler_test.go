package commands_test

import (
	"testing"
	"time"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fuelDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestLogFuelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	v := restoreVehicle(t, vehicle.Available)
	cmd, err := commands.NewLogFuelCommand(kernel.NewUUID(), v.ID(), 120, 2.5, fuelDate)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	expenseRepo := new(MockExpenseRepository)
	uow := new(MockExpenseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once(),
		uow.On("ExpenseRepository").Return(expenseRepo).Once(),
		expenseRepo.On("Add", mock.Anything, mock.AnythingOfType("*expense.Expense")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogFuelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Fuel never moves the vehicle, and the amount is derived from the volume.
	assert.Equal(t, vehicle.Available, v.Status())
	added := expenseRepo.Calls[0].Arguments.Get(1).(*expense.Expense)
	assert.Equal(t, expense.Fuel, added.Kind())
	assert.InDelta(t, 300.0, added.Amount(), 0.001)
	require.NotNil(t, added.Liters())
	assert.InDelta(t, 120.0, *added.Liters(), 0.001)
	uow.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	expenseRepo.AssertExpectations(t)
}

func TestLogFuelCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewLogFuelCommand(kernel.NewUUID(), vehicleID, 120, 2.5, fuelDate)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockExpenseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, vehicleID).Return(nil, errs.NewObjectNotFoundError("vehicle", vehicleID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogFuelCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestLogFuelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LogFuelCommand{} // not constructed properly
	factory := new(MockExpenseUoWFactory)
	h := commands.NewLogFuelCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrLogFuelCommandIsNotConstructed)
}

func TestNewLogFuelCommand_InvalidInput(t *testing.T) {
	expenseID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	cases := []struct {
		name string
		fn   func() (commands.LogFuelCommand, error)
		want error
	}{
		{"zero liters", func() (commands.LogFuelCommand, error) {
			return commands.NewLogFuelCommand(expenseID, vehicleID, 0, 2.5, fuelDate)
		}, commands.ErrLitersIsInvalid},
		{"negative price", func() (commands.LogFuelCommand, error) {
			return commands.NewLogFuelCommand(expenseID, vehicleID, 120, -1, fuelDate)
		}, commands.ErrPricePerLiterIsInvalid},
		{"zero date", func() (commands.LogFuelCommand, error) {
			return commands.NewLogFuelCommand(expenseID, vehicleID, 120, 2.5, time.Time{})
		}, commands.ErrDateIsRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			require.ErrorIs(t, err, tc.want)
		})
	}
}
