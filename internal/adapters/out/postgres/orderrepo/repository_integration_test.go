package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"geodispatch/internal/adapters/out/postgres/orderrepo"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
	"geodispatch/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify assignment persistence against draft orders.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) insertDraftOrder(orderID kernel.UUID) {
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{ID: orderID.Bytes()}).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) record(orderID kernel.UUID) ports.OrderAssignmentRecord {
	point, err := kernel.NewCoordinate(41.31, 69.28)
	suite.Require().NoError(err)

	zoneID := kernel.NewUUID()
	price := int64(5000)
	return ports.OrderAssignmentRecord{
		OrderID:          orderID,
		BranchID:         kernel.NewUUID(),
		ZoneID:           &zoneID,
		Coordinate:       point,
		FormattedAddress: "5 Navoi street",
		DistanceKm:       3.2,
		DurationMinutes:  11.5,
		DeliveryPrice:    &price,
		IsManualZone:     true,
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSaveAssignment() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.insertDraftOrder(orderID)

	record := suite.record(orderID)
	suite.Require().NoError(suite.repository.SaveAssignment(ctx, record))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", orderID.Bytes()).Error)
	suite.Require().NotNil(dto.BranchID)
	suite.Equal(record.BranchID.Bytes(), *dto.BranchID)
	suite.Require().NotNil(dto.ZoneID)
	suite.Equal(record.ZoneID.Bytes(), *dto.ZoneID)
	suite.Require().NotNil(dto.DeliveryPrice)
	suite.Equal(int64(5000), *dto.DeliveryPrice)
	suite.Require().NotNil(dto.FormattedAddress)
	suite.Equal("5 Navoi street", *dto.FormattedAddress)
	suite.True(dto.IsManualZone)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSaveAssignment_NoDraftOrder() {
	err := suite.repository.SaveAssignment(context.Background(), suite.record(kernel.NewUUID()))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSaveAssignment_ResubmissionClearsStaleColumns() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.insertDraftOrder(orderID)

	first := suite.record(orderID)
	suite.Require().NoError(suite.repository.SaveAssignment(ctx, first))

	// Second submission as pickup outside any zone: zone and price must clear.
	second := first
	second.ZoneID = nil
	second.DeliveryPrice = nil
	second.IsManualZone = false
	suite.Require().NoError(suite.repository.SaveAssignment(ctx, second))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", orderID.Bytes()).Error)
	suite.Nil(dto.ZoneID)
	suite.Nil(dto.DeliveryPrice)
	suite.False(dto.IsManualZone)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
