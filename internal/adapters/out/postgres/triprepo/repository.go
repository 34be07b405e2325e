package triprepo

import (
	"context"
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTripRepository implements TripRepository using GORM.
type GormTripRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB, tracker aggregateTracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trip to the database.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves an existing trip, guarded by the status the caller
// observed when it read the row. Matches zero rows when a concurrent transition
// committed first, surfacing ErrPreconditionFailed instead of overwriting.
func (r *GormTripRepository) UpdateIfStatus(ctx context.Context, aggregate *trip.Trip, expected trip.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TripDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("vehicle_id", "driver_id", "cargo_weight", "revenue", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("trip status", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trip by ID.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trip", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVehicle retrieves every trip assigned to the given vehicle.
func (r *GormTripRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*trip.Trip, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TripDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "vehicle_id = ?", vehicleID.Bytes()).Error; err != nil {
		return nil, err
	}

	trips := make([]*trip.Trip, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, nil
}
