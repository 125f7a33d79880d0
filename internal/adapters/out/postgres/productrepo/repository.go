package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a product repository on the given
// connection or transaction.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// wrapWriteError maps translated GORM constraint errors to conflicts.
// Requires TranslateError enabled on the gorm.Config.
func wrapWriteError(paramName string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConflictErrorWithCause(paramName, err)
	}
	return err
}

// Add inserts the product row and binds the generated id.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, wrapWriteError("product", err)
	}

	if err := aggregate.BindID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Get retrieves a product by id.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every product, newest first.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// UpdatePartial applies the non-nil patch fields to the row. An empty
// patch reports no change without touching the database.
func (r *GormProductRepository) UpdatePartial(ctx context.Context, id int64, patch ports.ProductPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = patch.Status.String()
	}
	if patch.GroupID != nil {
		fields["group_id"] = *patch.GroupID
	}
	if patch.SpecialPrice != nil {
		fields["special_price"] = *patch.SpecialPrice
	}
	if patch.Image1 != nil {
		fields["image1"] = *patch.Image1
	}
	if patch.Image2 != nil {
		fields["image2"] = *patch.Image2
	}
	if patch.Image3 != nil {
		fields["image3"] = *patch.Image3
	}
	if patch.Image4 != nil {
		fields["image4"] = *patch.Image4
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, wrapWriteError("product", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the product row. Returns whether it existed.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, wrapWriteError("product", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// CountInGroup returns the number of products referencing a group.
func (r *GormProductRepository) CountInGroup(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("group_id = ?", groupID).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
