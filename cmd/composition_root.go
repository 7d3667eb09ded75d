package cmd

import (
	"log/slog"

	"effdel/internal/adapters/out/postgres"
	"effdel/internal/adapters/out/postgres/productrepo"
	"effdel/internal/adapters/out/postgres/riderrepo"
	"effdel/internal/adapters/out/postgres/stockrepo"
	"effdel/internal/core/application/usecases/commands"
	"effdel/internal/core/application/usecases/queries"
	"effdel/internal/core/domain/services"
	"effdel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.orderUoWFactory(), c.riderDirectory())
}

func (c *CompositionRoot) CreatePickupOrderCommandHandler() commands.PickupOrderCommandHandler {
	return commands.NewPickupOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordRefundsCommandHandler() commands.RecordRefundsCommandHandler {
	return commands.NewRecordRefundsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	return commands.NewAddStockCommandHandler(
		productrepo.NewGormProductRepository(c.gormDB),
		stockrepo.NewGormRequestRepository(c.gormDB),
		stockrepo.NewGormAdditionLog(c.gormDB),
		services.NewStockReconciler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.riderDirectory())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRefundsQueryHandler() queries.GetRefundsQueryHandler {
	return queries.NewGetRefundsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStatusCountQueryHandler() queries.OrderStatusCountQueryHandler {
	return queries.NewOrderStatusCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductsByInventoryRangeQueryHandler() queries.ProductsByInventoryRangeQueryHandler {
	return queries.NewProductsByInventoryRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductsBySubCategoryQueryHandler() queries.ProductsBySubCategoryQueryHandler {
	return queries.NewProductsBySubCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductRequestsByStatusQueryHandler() queries.ProductRequestsByStatusQueryHandler {
	return queries.NewProductRequestsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(stockrepo.NewGormRequestRepository(c.gormDB), c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderDirectory() *riderrepo.GormRiderDirectory {
	return riderrepo.NewGormRiderDirectory(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
