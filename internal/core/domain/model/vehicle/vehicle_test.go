package vehicle_test

import (
	"testing"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid vehicle with all valid parameters", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 124500, 85000)

		require.NoError(t, err)
		assert.NotNil(t, v)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(validID))
		assert.Equal(t, "Volvo FH16", v.Name())
		assert.Equal(t, "KZ-7781", v.Plate())
		assert.Equal(t, vehicle.Truck, v.Kind())
		assert.Equal(t, 20000, v.MaxLoad())
		assert.Equal(t, 124500, v.Odometer())
		assert.InDelta(t, 85000.0, v.AcquisitionCost(), 0.001)
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		v, err := vehicle.NewVehicle(invalidID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 0, 85000)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "", "KZ-7781", vehicle.Truck, 20000, 0, 85000)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty plate", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Volvo FH16", "", vehicle.Truck, 20000, 0, 85000)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "plate")
	})

	t.Run("should fail with invalid kind", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.KindUnknown, 20000, 0, 85000)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "vehicle kind")
	})

	t.Run("should fail with zero max load", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.Truck, 0, 0, 85000)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "max load")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative odometer", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, -1, 85000)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "odometer")
	})

	t.Run("should fail with negative acquisition cost", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 0, -1)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "acquisition cost")
	})

	t.Run("should accept zero acquisition cost", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Old Van", "KZ-0001", vehicle.Van, 800, 0, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, v.AcquisitionCost(), 0.001)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		v, err := vehicle.NewVehicle(invalidID, "", "", vehicle.KindUnknown, -5, -1, -1)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "plate")
		assert.Contains(t, err.Error(), "max load")
	})
}

func TestRestoreVehicle(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore vehicle with stored status", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 500, 85000, vehicle.InShop)

		require.NoError(t, err)
		assert.Equal(t, vehicle.InShop, v.Status())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(validID, "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 500, 85000, vehicle.Unknown)

		require.Error(t, err)
		assert.Nil(t, v)
	})
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("should fail validation for nil vehicle", func(t *testing.T) {
		var v *vehicle.Vehicle

		require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})

	t.Run("should fail validation for zero value vehicle", func(t *testing.T) {
		var v vehicle.Vehicle

		require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})
}

func TestVehicle_Lifecycle(t *testing.T) {
	newVehicle := func(t *testing.T) *vehicle.Vehicle {
		t.Helper()
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 0, 85000)
		require.NoError(t, err)
		return v
	}

	t.Run("should cycle through trip dispatch and release", func(t *testing.T) {
		v := newVehicle(t)

		require.NoError(t, v.Dispatch())
		assert.Equal(t, vehicle.OnTrip, v.Status())

		require.NoError(t, v.Release())
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should not dispatch a vehicle on trip", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.Dispatch())

		require.ErrorIs(t, v.Dispatch(), vehicle.ErrIllegalTransition)
		assert.Equal(t, vehicle.OnTrip, v.Status())
	})

	t.Run("should cycle through maintenance", func(t *testing.T) {
		v := newVehicle(t)

		require.NoError(t, v.SendToShop())
		assert.Equal(t, vehicle.InShop, v.Status())

		require.NoError(t, v.CompleteMaintenance())
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("complete maintenance twice leaves vehicle available", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.SendToShop())

		require.NoError(t, v.CompleteMaintenance())
		require.NoError(t, v.CompleteMaintenance())
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should retire and stay retired", func(t *testing.T) {
		v := newVehicle(t)

		require.NoError(t, v.Retire())
		assert.Equal(t, vehicle.Retired, v.Status())

		require.ErrorIs(t, v.Dispatch(), vehicle.ErrIllegalTransition)
		require.ErrorIs(t, v.SendToShop(), vehicle.ErrIllegalTransition)
		require.ErrorIs(t, v.Retire(), vehicle.ErrIllegalTransition)
		assert.Equal(t, vehicle.Retired, v.Status())
	})
}

func TestVehicle_UpdateOdometer(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Volvo FH16", "KZ-7781", vehicle.Truck, 20000, 1000, 85000)
	require.NoError(t, err)

	t.Run("should accept higher reading", func(t *testing.T) {
		require.NoError(t, v.UpdateOdometer(1500))
		assert.Equal(t, 1500, v.Odometer())
	})

	t.Run("should accept equal reading", func(t *testing.T) {
		require.NoError(t, v.UpdateOdometer(1500))
		assert.Equal(t, 1500, v.Odometer())
	})

	t.Run("should reject lower reading", func(t *testing.T) {
		err := v.UpdateOdometer(900)

		require.ErrorIs(t, err, vehicle.ErrOdometerMovedBackwards)
		assert.Equal(t, 1500, v.Odometer())
	})
}
