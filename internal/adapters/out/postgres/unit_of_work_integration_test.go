package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/vudinhquy04/NovaTechApp/internal/adapters/out/postgres"
	"github.com/vudinhquy04/NovaTechApp/internal/adapters/out/postgres/orderrepo"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// and runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(code string) *order.Order {
	receiver, err := order.NewReceiver("Quy Vu", "0901234567", "12 Nguyen Trai, Ha Noi")
	suite.Require().NoError(err)

	item, err := order.NewItem("Smart bulb", "", 1, kernel.NewMoneyFromInt(50))
	suite.Require().NoError(err)

	payment, err := order.NewPaymentInfo("COD", "", false)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		code,
		receiver,
		[]order.Item{item},
		kernel.ZeroMoney(),
		kernel.ZeroMoney(),
		payment,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("NT-20260829-BBBB0001")))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("NT-20260829-BBBB0002")))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryWithoutTransaction_UsesMainConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: the repository writes directly on the main connection.
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("NT-20260829-BBBB0003")))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnitsOfWork_AreIsolated() {
	ctx := context.Background()
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	suite.Require().NoError(first.OrderRepository().Add(ctx, suite.newOrder("NT-20260829-BBBB0004")))
	suite.Require().NoError(second.OrderRepository().Add(ctx, suite.newOrder("NT-20260829-BBBB0005")))

	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(second.Rollback(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateCodeInsideTransaction_SurfacesDuplicateError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	suite.Require().NoError(repo.Add(ctx, suite.newOrder("NT-20260829-BBBB0006")))

	err := repo.Add(ctx, suite.newOrder("NT-20260829-BBBB0006"))

	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrDuplicateOrderCode)
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
