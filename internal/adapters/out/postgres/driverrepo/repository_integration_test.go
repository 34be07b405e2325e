package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"fleetflow/internal/adapters/out/postgres/driverrepo"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
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

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("Aset Nurpeisov")

	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()

	err := suite.repository.Add(ctx, testDriver)
	suite.Require().NoError(err)
	suite.tracker.AssertExpectations(suite.T())

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), retrieved.ID())
	suite.Equal("Aset Nurpeisov", retrieved.Name())
	suite.Equal(driver.OnDuty, retrieved.Status())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdateIfStatus_ObservedStatusMatches_Persists() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("Aset Nurpeisov")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	observed := testDriver.Status()
	suite.Require().NoError(testDriver.ChangeStatus(driver.Suspended))

	err := suite.repository.UpdateIfStatus(ctx, testDriver, observed)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Suspended, retrieved.Status())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdateIfStatus_StaleObservedStatus_ReturnsPreconditionError() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("Aset Nurpeisov")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	// Stored row says on duty but the caller observed suspended.
	suite.Require().NoError(testDriver.ChangeStatus(driver.OffDuty))

	err := suite.repository.UpdateIfStatus(ctx, testDriver, driver.Suspended)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAll_ReturnsRosterOrderedByName() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	second := suite.createTestDriver("Bolat Seitkali")
	first := suite.createTestDriver("Aset Nurpeisov")
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))

	drivers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(drivers, 2)
	suite.Equal("Aset Nurpeisov", drivers[0].Name())
	suite.Equal("Bolat Seitkali", drivers[1].Name())
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(name string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, time.Now().AddDate(1, 0, 0))
	suite.Require().NoError(err)
	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
