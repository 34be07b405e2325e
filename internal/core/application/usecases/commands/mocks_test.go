package commands_test

import (
	"context"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateIfStatus(ctx context.Context, v *vehicle.Vehicle, expected vehicle.Status) error {
	args := m.Called(ctx, v, expected)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) UpdateIfStatus(ctx context.Context, d *driver.Driver, expected driver.Status) error {
	args := m.Called(ctx, d, expected)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) UpdateIfStatus(ctx context.Context, t *trip.Trip, expected trip.Status) error {
	args := m.Called(ctx, t, expected)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*trip.Trip, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Trip), args.Error(1)
}

type MockExpenseRepository struct{ mock.Mock }

func (m *MockExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*expense.Expense, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*expense.Expense), args.Error(1)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockDriverUoW struct{ mock.Mock }

func (m *MockDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockTripUoW struct{ mock.Mock }

func (m *MockTripUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTripUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTripUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTripUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockTripUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockTripUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	args := m.Called()
	return args.Get(0).(commands.TripUoW)
}

type MockExpenseUoW struct{ mock.Mock }

func (m *MockExpenseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpenseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpenseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpenseUoW) ExpenseRepository() ports.ExpenseRepository {
	args := m.Called()
	return args.Get(0).(ports.ExpenseRepository)
}

func (m *MockExpenseUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockExpenseUoWFactory struct{ mock.Mock }

func (m *MockExpenseUoWFactory) Create() commands.ExpenseUoW {
	args := m.Called()
	return args.Get(0).(commands.ExpenseUoW)
}
