package productrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for
// GormProductRepository and GormMOQRepository using a PostgreSQL container.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	moqs       *productrepo.GormMOQRepository
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}, &productrepo.MOQDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, moqs").Error)

	suite.repository = productrepo.NewGormProductRepository(suite.db)
	suite.moqs = productrepo.NewGormMOQRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_BindsGeneratedID() {
	ctx := context.Background()

	p := suite.createTestProduct("Basmati Rice")

	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)
	suite.Positive(id)
	suite.Equal(id, p.ID())

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Basmati Rice", retrieved.Name())
	suite.Equal(45.5, retrieved.Price())
	suite.Equal(product.StatusActive, retrieved.Status())
	suite.Nil(retrieved.GroupID())
	suite.Nil(retrieved.SpecialPrice())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()

	first := suite.createTestProduct("First")
	second := suite.createTestProduct("Second")

	_, err := suite.repository.Add(ctx, first)
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, second)
	suite.Require().NoError(err)

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Second", all[0].Name())
	suite.Equal("First", all[1].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdatePartial_AppliesOnlyPatchedFields() {
	ctx := context.Background()

	p := suite.createTestProduct("Lentils")
	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	newName := "Red Lentils"
	newPrice := 52.0
	ref := "img-ref-1"
	status := product.StatusInactive
	changed, err := suite.repository.UpdatePartial(ctx, id, ports.ProductPatch{
		Name:   &newName,
		Price:  &newPrice,
		Status: &status,
		Image1: &ref,
	})
	suite.Require().NoError(err)
	suite.True(changed)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Red Lentils", retrieved.Name())
	suite.Equal(52.0, retrieved.Price())
	suite.Equal(product.StatusInactive, retrieved.Status())
	suite.Equal("stock description", retrieved.Description())

	img, err := retrieved.ImageAt(0)
	suite.Require().NoError(err)
	suite.Require().NotNil(img)
	suite.Equal("img-ref-1", *img)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdatePartial_EmptyPatch_NoOp() {
	ctx := context.Background()

	p := suite.createTestProduct("Sugar")
	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	changed, err := suite.repository.UpdatePartial(ctx, id, ports.ProductPatch{})
	suite.Require().NoError(err)
	suite.False(changed)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdatePartial_NonExistentProduct_ReportsNoChange() {
	ctx := context.Background()

	newName := "Ghost"
	changed, err := suite.repository.UpdatePartial(ctx, 424242, ports.ProductPatch{Name: &newName})
	suite.Require().NoError(err)
	suite.False(changed)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_ReportsExistence() {
	ctx := context.Background()

	p := suite.createTestProduct("Flour")
	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	removed, err := suite.repository.Delete(ctx, id)
	suite.Require().NoError(err)
	suite.True(removed)

	removed, err = suite.repository.Delete(ctx, id)
	suite.Require().NoError(err)
	suite.False(removed)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestCountInGroup_CountsOnlyMatchingProducts() {
	ctx := context.Background()

	grouped := suite.createTestProduct("Grouped")
	suite.Require().NoError(grouped.SetGroup(7))
	loose := suite.createTestProduct("Loose")

	_, err := suite.repository.Add(ctx, grouped)
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, loose)
	suite.Require().NoError(err)

	count, err := suite.repository.CountInGroup(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repository.CountInGroup(ctx, 8)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestMOQ_AddBatchAndList_OrderedByQuantity() {
	ctx := context.Background()

	p := suite.createTestProduct("Tea")
	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	tiers := []product.Tier{
		suite.mustTier(100, 38.0),
		suite.mustTier(10, 42.5),
		suite.mustTier(50, 40.0),
	}
	suite.Require().NoError(suite.moqs.AddBatch(ctx, id, tiers))

	listed, err := suite.moqs.ListByProduct(ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 3)
	suite.Equal(10, listed[0].Quantity())
	suite.Equal(50, listed[1].Quantity())
	suite.Equal(100, listed[2].Quantity())
}

// Replacing a tier set twice with the same input must converge on the same
// stored set, not accumulate rows.
func (suite *ProductRepositoryIntegrationTestSuite) TestMOQ_DeleteThenAddBatch_ReplaceIsIdempotent() {
	ctx := context.Background()

	p := suite.createTestProduct("Coffee")
	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	replacement := []product.Tier{
		suite.mustTier(10, 90.0),
		suite.mustTier(25, 85.0),
	}

	for range 2 {
		_, err = suite.moqs.DeleteByProduct(ctx, id)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.moqs.AddBatch(ctx, id, replacement))
	}

	listed, err := suite.moqs.ListByProduct(ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.Equal(10, listed[0].Quantity())
	suite.Equal(25, listed[1].Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestMOQ_DeleteByProduct_ReturnsRemovedCount() {
	ctx := context.Background()

	p := suite.createTestProduct("Spice")
	id, err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.moqs.AddBatch(ctx, id, []product.Tier{suite.mustTier(5, 12.0)}))

	removed, err := suite.moqs.DeleteByProduct(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	removed, err = suite.moqs.DeleteByProduct(ctx, id)
	suite.Require().NoError(err)
	suite.Zero(removed)
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(name string) *product.Product {
	p, err := product.NewProduct(name, 45.5, "stock description")
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) mustTier(quantity int, rate float64) product.Tier {
	tier, err := product.NewTier(quantity, rate)
	suite.Require().NoError(err)
	return tier
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
