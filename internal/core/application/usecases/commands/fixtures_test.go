package commands_test

import (
	"testing"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func restoreVehicle(t *testing.T, status vehicle.Status) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 1000, 85000, status)
	require.NoError(t, err)
	return v
}

func restoreDriver(t *testing.T, status driver.Status) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Aset Nurpeisov", time.Now().AddDate(1, 0, 0), status)
	require.NoError(t, err)
	return d
}

func restoreTrip(t *testing.T, vehicleID kernel.UUID, status trip.Status) *trip.Trip {
	t.Helper()
	tr, err := trip.RestoreTrip(kernel.NewUUID(), vehicleID, kernel.NewUUID(), 1500, 320.50, status)
	require.NoError(t, err)
	return tr
}
