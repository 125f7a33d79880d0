package productrepo

import (
	"context"

	"storefront/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormMOQRepository implements ports.MOQRepository using GORM. Tier rows
// are owned by their product and only ever written in full sets.
type GormMOQRepository struct {
	db *gorm.DB
}

// NewGormMOQRepository creates a MOQ repository on the given connection
// or transaction.
func NewGormMOQRepository(db *gorm.DB) *GormMOQRepository {
	return &GormMOQRepository{db: db}
}

// ListByProduct returns the tiers of a product ascending by quantity.
func (r *GormMOQRepository) ListByProduct(ctx context.Context, productID int64) ([]product.Tier, error) {
	var dtos []MOQDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("quantity ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tiers := make([]product.Tier, 0, len(dtos))
	for _, dto := range dtos {
		tier, tierErr := tierFromDTO(dto)
		if tierErr != nil {
			return nil, tierErr
		}
		tiers = append(tiers, tier)
	}

	return tiers, nil
}

// AddBatch inserts the tiers bound to the product, in list order.
func (r *GormMOQRepository) AddBatch(ctx context.Context, productID int64, tiers []product.Tier) error {
	if len(tiers) == 0 {
		return nil
	}

	dtos := make([]MOQDTO, 0, len(tiers))
	for _, tier := range tiers {
		dtos = append(dtos, MOQDTO{
			ProductID: productID,
			Quantity:  tier.Quantity(),
			Rate:      tier.Rate(),
		})
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return wrapWriteError("moq", err)
	}
	return nil
}

// DeleteByProduct removes every tier of the product and returns how many
// rows went away.
func (r *GormMOQRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&MOQDTO{}, "product_id = ?", productID)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
