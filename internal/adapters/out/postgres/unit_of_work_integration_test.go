package postgres_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/warehouserepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&warehouserepo.CellDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db, warehouserepo.Config{
		Rows:     warehouse.DefaultRows,
		Cols:     warehouse.DefaultCols,
		Capacity: warehouse.DefaultCapacity,
	})
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE warehouse_cells, orders, order_items").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsGridAndOrderTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	grid := suite.gridWithBatch(0, 0, 7, 100)
	suite.Require().NoError(uow.WarehouseRepository().Save(ctx, grid))

	customerOrder := suite.customerOrder(1, 5, 7, 20)
	suite.Require().NoError(uow.CustomerOrderRepository().Add(ctx, customerOrder))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCellCount(1)
	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	grid := suite.gridWithBatch(0, 0, 7, 100)
	suite.Require().NoError(uow.WarehouseRepository().Save(ctx, grid))

	customerOrder := suite.customerOrder(1, 5, 7, 20)
	suite.Require().NoError(uow.CustomerOrderRepository().Add(ctx, customerOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCellCount(0)
	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_DoesNotNestTransactions() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	customerOrder := suite.customerOrder(1, 5, 7, 20)
	suite.Require().NoError(uow.CustomerOrderRepository().Add(ctx, customerOrder))

	suite.Require().NoError(uow.Commit(ctx))
	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_ExecuteImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: the repository writes through the main connection.
	customerOrder := suite.customerOrder(1, 5, 7, 20)
	suite.Require().NoError(uow.CustomerOrderRepository().Add(ctx, customerOrder))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChanges_NotVisibleOutsideTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	customerOrder := suite.customerOrder(1, 5, 7, 20)
	suite.Require().NoError(uow.CustomerOrderRepository().Add(ctx, customerOrder))

	// A second unit of work on the main connection must not see the insert yet.
	other := suite.factory.Create()
	_, err := other.CustomerOrderRepository().Get(ctx, 1)
	suite.Require().Error(err)

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := other.CustomerOrderRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.OrderNumber())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreate_ImplementsPortsInterface() {
	var uow ports.UnitOfWork = suite.factory.Create()

	suite.NotNil(uow.WarehouseRepository())
	suite.NotNil(uow.PartRepository())
	suite.NotNil(uow.CustomerOrderRepository())
	suite.NotNil(uow.PurchaseOrderRepository())
	suite.NotNil(uow.DeliveryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) gridWithBatch(
	row int, col int, productCode int, quantity int,
) *warehouse.StorageGrid {
	grid, err := warehouse.NewStorageGrid(
		warehouse.DefaultRows, warehouse.DefaultCols, warehouse.DefaultCapacity)
	suite.Require().NoError(err)

	location, err := kernel.NewLocation(kernel.Coordinate(row), kernel.Coordinate(col))
	suite.Require().NoError(err)

	batch, err := stock.NewBatch(productCode, quantity)
	suite.Require().NoError(err)

	suite.Require().NoError(grid.LoadBatch(location, batch))
	return grid
}

func (suite *UnitOfWorkIntegrationTestSuite) customerOrder(
	orderNumber int, customerCode int, productCode int, quantity int,
) *order.CustomerOrder {
	aggregate, err := order.NewCustomerOrder(orderNumber, customerCode, time.Now().UTC())
	suite.Require().NoError(err)

	batch, err := stock.NewBatch(productCode, quantity)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddBatch(batch))

	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCellCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&warehouserepo.CellDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
