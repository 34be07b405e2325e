package triprepo_test

import (
	"context"
	"testing"
	"time"

	"fleetflow/internal/adapters/out/postgres/triprepo"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TripRepositoryIntegrationTestSuite provides integration tests for TripRepository
// using PostgreSQL containers to verify database persistence behavior.
type TripRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *triprepo.GormTripRepository
	tracker    *MockAggregateTracker
}

func (suite *TripRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&triprepo.TripDTO{}))
}

func (suite *TripRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trips").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = triprepo.NewGormTripRepository(suite.db, suite.tracker)
}

func (suite *TripRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TripRepositoryIntegrationTestSuite) TestAdd_ValidTrip_Success() {
	ctx := context.Background()
	testTrip := suite.createTestTrip(kernel.NewUUID(), kernel.NewUUID())

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Once()

	err := suite.repository.Add(ctx, testTrip)
	suite.Require().NoError(err)
	suite.tracker.AssertExpectations(suite.T())

	retrieved, err := suite.repository.Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(testTrip.ID(), retrieved.ID())
	suite.Equal(testTrip.VehicleID(), retrieved.VehicleID())
	suite.Equal(testTrip.DriverID(), retrieved.DriverID())
	suite.Equal(1500, retrieved.CargoWeight())
	suite.InDelta(320.50, retrieved.Revenue(), 0.0001)
	suite.Equal(trip.Draft, retrieved.Status())
}

func (suite *TripRepositoryIntegrationTestSuite) TestGet_NonExistentTrip_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdateIfStatus_LifecycleTransitions() {
	ctx := context.Background()
	testTrip := suite.createTestTrip(kernel.NewUUID(), kernel.NewUUID())

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	observed := testTrip.Status()
	suite.Require().NoError(testTrip.Dispatch())
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, testTrip, observed))

	observed = testTrip.Status()
	suite.Require().NoError(testTrip.Complete())
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, testTrip, observed))

	retrieved, err := suite.repository.Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(trip.Completed, retrieved.Status())
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdateIfStatus_StaleObservedStatus_ReturnsPreconditionError() {
	ctx := context.Background()
	testTrip := suite.createTestTrip(kernel.NewUUID(), kernel.NewUUID())

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	// Stored row is still draft but the caller claims to have seen it dispatched.
	suite.Require().NoError(testTrip.Dispatch())
	suite.Require().NoError(testTrip.Complete())

	err := suite.repository.UpdateIfStatus(ctx, testTrip, trip.Dispatched)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
}

func (suite *TripRepositoryIntegrationTestSuite) TestGetAllByVehicle_ReturnsOnlyThatVehiclesTrips() {
	ctx := context.Background()

	vehicleID := kernel.NewUUID()
	otherVehicleID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestTrip(vehicleID, kernel.NewUUID())
	second := suite.createTestTrip(vehicleID, kernel.NewUUID())
	other := suite.createTestTrip(otherVehicleID, kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	trips, err := suite.repository.GetAllByVehicle(ctx, vehicleID)
	suite.Require().NoError(err)
	suite.Require().Len(trips, 2)
	for _, tr := range trips {
		suite.Equal(vehicleID, tr.VehicleID())
	}
}

func (suite *TripRepositoryIntegrationTestSuite) TestGetAllByVehicle_NoTrips_ReturnsEmptySlice() {
	ctx := context.Background()

	trips, err := suite.repository.GetAllByVehicle(ctx, kernel.NewUUID())

	suite.Require().NoError(err)
	suite.NotNil(trips)
	suite.Empty(trips)
}

func (suite *TripRepositoryIntegrationTestSuite) createTestTrip(vehicleID, driverID kernel.UUID) *trip.Trip {
	tr, err := trip.NewTrip(kernel.NewUUID(), vehicleID, driverID, 1500, 320.50)
	suite.Require().NoError(err)
	return tr
}

func TestTripRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TripRepositoryIntegrationTestSuite))
}
