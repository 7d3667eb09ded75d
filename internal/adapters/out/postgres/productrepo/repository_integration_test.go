package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"effdel/internal/adapters/out/postgres/productrepo"
	"effdel/internal/core/domain/model/product"
	"effdel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository, in particular the atomic inventory counter.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	p, err := product.NewProduct("prod-1", "sub-1", "Espresso Beans", 120)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	retrieved, err := suite.repository.Get(ctx, "prod-1")
	suite.Require().NoError(err)
	suite.Equal("prod-1", retrieved.ID())
	suite.Equal("sub-1", retrieved.SubCategoryID())
	suite.Equal("Espresso Beans", retrieved.Name())
	suite.Equal(120, retrieved.CurrentInventory())
	suite.Equal(product.RangeMedium, retrieved.InventoryRange())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, "prod-missing")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestIncrementInventory_ExistingProduct() {
	ctx := context.Background()

	p, err := product.NewProduct("prod-1", "sub-1", "Espresso Beans", 100)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	newCount, err := suite.repository.IncrementInventory(ctx, "prod-1", 50)
	suite.Require().NoError(err)
	suite.Equal(150, newCount)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestIncrementInventory_UnseenProductIsCreated() {
	ctx := context.Background()

	newCount, err := suite.repository.IncrementInventory(ctx, "prod-new", 30)
	suite.Require().NoError(err)
	suite.Equal(30, newCount)

	retrieved, err := suite.repository.Get(ctx, "prod-new")
	suite.Require().NoError(err)
	suite.Equal(30, retrieved.CurrentInventory())
}

// TestIncrementInventory_ConcurrentArrivalsNeverLoseUpdates drives parallel
// increments against one product and checks the final count is the exact
// sum. A read-modify-write implementation loses updates under this load.
func (suite *ProductRepositoryIntegrationTestSuite) TestIncrementInventory_ConcurrentArrivalsNeverLoseUpdates() {
	ctx := context.Background()

	const (
		workers    = 10
		iterations = 20
		units      = 3
	)

	var wg sync.WaitGroup
	errCh := make(chan error, workers*iterations)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				if _, err := suite.repository.IncrementInventory(ctx, "prod-hot", units); err != nil {
					errCh <- err
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	retrieved, err := suite.repository.Get(ctx, "prod-hot")
	suite.Require().NoError(err)
	suite.Equal(workers*iterations*units, retrieved.CurrentInventory())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllBySubCategory() {
	ctx := context.Background()

	for _, fixture := range []struct {
		id, sub, name string
		inventory     int
	}{
		{"prod-1", "sub-1", "Espresso Beans", 50},
		{"prod-2", "sub-1", "Filter Paper", 250},
		{"prod-3", "sub-2", "Green Tea", 10},
	} {
		p, err := product.NewProduct(fixture.id, fixture.sub, fixture.name, fixture.inventory)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	products, err := suite.repository.GetAllBySubCategory(ctx, "sub-1")
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("prod-1", products[0].ID())
	suite.Equal("prod-2", products[1].ID())

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
