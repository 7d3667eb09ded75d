package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"effdel/internal/adapters/out/postgres/productrepo"
	"effdel/internal/adapters/out/postgres/stockrepo"
	"effdel/internal/core/application/usecases/commands"
	"effdel/internal/core/domain/model/stock"
	"effdel/internal/core/domain/services"
	"effdel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AddStockFlowIntegrationTestSuite runs the stock arrival flow end to end
// against a real database, covering both the happy path and the documented
// partial-failure behavior of the multi-step update.
type AddStockFlowIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	products  *productrepo.GormProductRepository
	requests  *stockrepo.GormRequestRepository
	additions *stockrepo.GormAdditionLog
	handler   commands.AddStockCommandHandler
}

func (suite *AddStockFlowIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.ProductDTO{},
		&stockrepo.RequestDTO{},
		&stockrepo.AdditionDTO{},
	))
}

func (suite *AddStockFlowIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, product_requests, stock_additions").Error)

	suite.products = productrepo.NewGormProductRepository(suite.db)
	suite.requests = stockrepo.NewGormRequestRepository(suite.db)
	suite.additions = stockrepo.NewGormAdditionLog(suite.db)
	suite.handler = commands.NewAddStockCommandHandler(
		suite.products,
		suite.requests,
		suite.additions,
		services.NewStockReconciler(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (suite *AddStockFlowIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AddStockFlowIntegrationTestSuite) TestArrival_MatchesRequestAndAppendsAudit() {
	ctx := context.Background()

	request, err := stock.NewRequest("req-1", "prod-1", 50)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.requests.Add(ctx, request))

	cmd, err := commands.NewAddStockCommand("prod-1", "req-1", 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(50, result.NewInventory)
	suite.Equal(stock.RequestMatched, result.RequestStatus)

	reconciled, err := suite.requests.GetByRequestID(ctx, "req-1")
	suite.Require().NoError(err)
	suite.Equal(stock.RequestMatched, reconciled.Status())
	suite.Equal(50, reconciled.FulfilledUnits())

	entries, err := suite.additions.GetAllByProduct(ctx, "prod-1")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(50, entries[0].Units())
}

// TestArrival_UnknownRequestLeavesInventoryIncremented pins down the
// partial-failure gap: the inventory increment commits on its own, so a
// lookup failure in a later step does not undo it.
func (suite *AddStockFlowIntegrationTestSuite) TestArrival_UnknownRequestLeavesInventoryIncremented() {
	ctx := context.Background()

	cmd, err := commands.NewAddStockCommand("prod-1", "req-missing", 40)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, cmd)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// The increment survived the failed request lookup.
	p, err := suite.products.Get(ctx, "prod-1")
	suite.Require().NoError(err)
	suite.Equal(40, p.CurrentInventory())

	// No audit entry was written for the orphaned arrival.
	entries, err := suite.additions.GetAllByProduct(ctx, "prod-1")
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *AddStockFlowIntegrationTestSuite) TestArrival_MismatchIsUnmatchedButInventoryFull() {
	ctx := context.Background()

	request, err := stock.NewRequest("req-1", "prod-1", 50)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.requests.Add(ctx, request))

	cmd, err := commands.NewAddStockCommand("prod-1", "req-1", 30)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(stock.RequestUnmatched, result.RequestStatus)
	suite.Equal(30, result.NewInventory)

	reconciled, err := suite.requests.GetByRequestID(ctx, "req-1")
	suite.Require().NoError(err)
	suite.Equal(stock.RequestUnmatched, reconciled.Status())
	suite.Equal(30, reconciled.FulfilledUnits())
}

func TestAddStockFlowIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AddStockFlowIntegrationTestSuite))
}
