package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. It is the only
// place that knows concrete implementations.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	store      ports.ImageStore
	ledger     ports.OrphanImageLedger
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot assembles the root over already-constructed adapters.
// publisher may be nil, which disables event publishing.
func NewCompositionRoot(
	gormDB *gorm.DB,
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      store,
		ledger:     ledger,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) groupUoWFactory() commands.GroupUoWFactory {
	return FuncGroupUoWFactory(func() commands.GroupUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers builds every handler the HTTP surface exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateProduct: commands.NewCreateProductCommandHandler(
			c.productUoWFactory(), c.store, c.ledger, c.publisher, c.logger),
		UpdateProduct: commands.NewUpdateProductCommandHandler(
			c.productUoWFactory(), c.store, c.ledger, c.publisher, c.logger),
		DeleteProduct: commands.NewDeleteProductCommandHandler(
			c.productUoWFactory(), c.store, c.ledger, c.publisher, c.logger),
		ReplaceMOQs: commands.NewReplaceMOQsCommandHandler(
			c.productUoWFactory(), c.publisher, c.logger),

		CreateOrder: commands.NewCreateOrderCommandHandler(
			c.orderUoWFactory(), c.publisher, c.logger),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(
			c.orderUoWFactory(), c.logger),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(
			c.orderUoWFactory(), c.publisher, c.logger),
		ChangeOrderStatus: commands.NewChangeOrderStatusCommandHandler(
			c.orderUoWFactory(), c.publisher, c.logger),
		CancelOrder: commands.NewCancelOrderCommandHandler(
			c.orderUoWFactory(), c.publisher, c.logger),
		BulkUpdateOrderStatus: commands.NewBulkUpdateOrderStatusCommandHandler(
			c.orderUoWFactory(), c.publisher, c.logger),
		BulkCancelOrders: commands.NewBulkCancelOrdersCommandHandler(
			c.orderUoWFactory(), c.publisher, c.logger),

		RegisterUser: commands.NewRegisterUserCommandHandler(
			c.userUoWFactory(), c.publisher, c.logger),
		UpdateUser: commands.NewUpdateUserCommandHandler(
			c.userUoWFactory(), c.logger),
		ChangePassword: commands.NewChangePasswordCommandHandler(
			c.userUoWFactory(), c.publisher, c.logger),
		DeactivateUser: commands.NewDeactivateUserCommandHandler(
			c.userUoWFactory(), c.publisher, c.logger),

		CreateGroup: commands.NewCreateGroupCommandHandler(c.groupUoWFactory(), c.logger),
		UpdateGroup: commands.NewUpdateGroupCommandHandler(c.groupUoWFactory(), c.logger),
		DeleteGroup: commands.NewDeleteGroupCommandHandler(c.groupUoWFactory(), c.logger),

		GetProducts:  queries.NewGetProductsQueryHandler(c.gormDB),
		GetProduct:   queries.NewGetProductQueryHandler(c.gormDB, c.store),
		GetOrders:    queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:     queries.NewGetOrderQueryHandler(c.gormDB),
		SearchGroups: queries.NewSearchGroupsQueryHandler(c.gormDB),
	}
}

// CreateOrphanImageSweeperJob builds the sweeper over the shared store
// and ledger.
func (c *CompositionRoot) CreateOrphanImageSweeperJob() *jobs.OrphanImageSweeperJob {
	return jobs.NewOrphanImageSweeperJob(c.store, c.ledger, c.logger)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncGroupUoWFactory func() commands.GroupUoW

func (f FuncGroupUoWFactory) Create() commands.GroupUoW {
	return f()
}
