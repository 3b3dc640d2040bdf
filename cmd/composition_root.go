package cmd

import (
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/warehouserepo"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	gridConfig := warehouserepo.Config{
		Rows:     config.GridRows,
		Cols:     config.GridCols,
		Capacity: config.GridCapacity,
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, gridConfig),
	}
}

func (c *CompositionRoot) CreateCreateCustomerOrderCommandHandler() commands.CreateCustomerOrderCommandHandler {
	var f commands.CustomerOrderUoWFactory = FuncCustomerOrderUoWFactory(func() commands.CustomerOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFulfillOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStoreDeliveryCommandHandler() commands.StoreDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStoreDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestockOrderCommandHandler() commands.CreateRestockOrderCommandHandler {
	var f commands.RestockUoWFactory = FuncRestockUoWFactory(func() commands.RestockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestockOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShortfallOrderCommandHandler() commands.CreateShortfallOrderCommandHandler {
	var f commands.ShortfallUoWFactory = FuncShortfallUoWFactory(func() commands.ShortfallUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShortfallOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStockLevelsQueryHandler() queries.GetStockLevelsQueryHandler {
	return queries.NewGetStockLevelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfulfilledOrdersQueryHandler() queries.GetUnfulfilledOrdersQueryHandler {
	return queries.NewGetUnfulfilledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderCostQueryHandler() queries.GetOrderCostQueryHandler {
	return queries.NewGetOrderCostQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

type FuncCustomerOrderUoWFactory func() commands.CustomerOrderUoW

func (f FuncCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRestockUoWFactory func() commands.RestockUoW

func (f FuncRestockUoWFactory) Create() commands.RestockUoW {
	return f()
}

type FuncShortfallUoWFactory func() commands.ShortfallUoW

func (f FuncShortfallUoWFactory) Create() commands.ShortfallUoW {
	return f()
}
