package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresout "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that composite writes through the
// unit of work are atomic: either every repository operation lands or none
// does.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresout.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.MOQDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, moqs, orders, order_details").Error)

	suite.factory = postgresout.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_ProductWithTiers_PersistsBoth() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	p := suite.createTestProduct()
	id, err := uow.ProductRepository().Add(ctx, p)
	suite.Require().NoError(err)

	tier, err := product.NewTier(10, 42.5)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MOQRepository().AddBatch(ctx, id, []product.Tier{tier}))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&productrepo.ProductDTO{}, 1)
	suite.assertCount(&productrepo.MOQDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_ProductWithTiers_DiscardsBoth() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	p := suite.createTestProduct()
	id, err := uow.ProductRepository().Add(ctx, p)
	suite.Require().NoError(err)

	tier, err := product.NewTier(10, 42.5)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MOQRepository().AddBatch(ctx, id, []product.Tier{tier}))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&productrepo.ProductDTO{}, 0)
	suite.assertCount(&productrepo.MOQDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_OrderWithDetails_DiscardsBoth() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := order.NewOrder(1, 0, 0, 0, 55.0, "12 Hill Street", 5.0, "buyer@example.com")
	suite.Require().NoError(err)

	id, err := uow.OrderRepository().Add(ctx, o)
	suite.Require().NoError(err)

	detail, err := order.NewDetail(11, 2, 25.0, 50.0, 5.0)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderDetailRepository().AddBatch(ctx, id, []order.Detail{detail}))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&orderrepo.OrderDetailDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_DoesNotNest() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	p := suite.createTestProduct()
	_, err := uow.ProductRepository().Add(ctx, p)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))
	suite.assertCount(&productrepo.ProductDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsInvalidTransaction() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_ReturnsInvalidTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_UseBaseConnection() {
	ctx := context.Background()

	uow := suite.factory.Create()

	p := suite.createTestProduct()
	_, err := uow.ProductRepository().Add(ctx, p)
	suite.Require().NoError(err)

	suite.assertCount(&productrepo.ProductDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTierReplacement_NoPartialStateSurvives() {
	ctx := context.Background()

	p := suite.createTestProduct()
	productID, err := suite.factory.Create().ProductRepository().Add(ctx, p)
	suite.Require().NoError(err)

	tierSet := func(rate float64) []product.Tier {
		var tiers []product.Tier
		for _, quantity := range []int{10, 20, 30} {
			tier, err := product.NewTier(quantity, rate)
			suite.Require().NoError(err)
			tiers = append(tiers, tier)
		}
		return tiers
	}

	replace := func(tiers []product.Tier) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if _, err := uow.MOQRepository().DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		if err := uow.MOQRepository().AddBatch(ctx, productID, tiers); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, rate := range []float64{1.0, 2.0} {
		wg.Add(1)
		go func(rate float64) {
			defer wg.Done()
			results <- replace(tierSet(rate))
		}(rate)
	}
	wg.Wait()
	close(results)

	for err := range results {
		suite.Require().NoError(err)
	}

	tiers, err := suite.factory.Create().MOQRepository().ListByProduct(ctx, productID)
	suite.Require().NoError(err)

	// Each writer's set must survive whole or not at all. Depending on how
	// the transactions interleave, one or both sets remain, but never a mix
	// of rows from different sets within one rate.
	quantitiesByRate := map[float64][]int{}
	for _, tier := range tiers {
		quantitiesByRate[tier.Rate()] = append(quantitiesByRate[tier.Rate()], tier.Quantity())
	}
	suite.Require().NotEmpty(quantitiesByRate)
	for rate, quantities := range quantitiesByRate {
		suite.Equalf([]int{10, 20, 30}, quantities, "rate %v set is incomplete", rate)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct() *product.Product {
	p, err := product.NewProduct("Basmati Rice", 45.5, "")
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
