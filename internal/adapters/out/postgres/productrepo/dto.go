// Package productrepo persists product aggregates and their MOQ tier
// rows, mapping between domain entities and database representations.
package productrepo

import (
	"time"

	"storefront/internal/core/domain/model/product"
)

// ProductDTO is the database row for a product. Image columns hold stable
// storage references, not URLs.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:255;not null"`
	Price        float64
	Description  string
	Status       string `gorm:"size:1;index"`
	GroupID      *int64 `gorm:"index"`
	SpecialPrice *float64
	Image1       *string
	Image2       *string
	Image3       *string
	Image4       *string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's default to "products".
func (ProductDTO) TableName() string {
	return "products"
}

// MOQDTO is the database row for one minimum-order-quantity tier.
type MOQDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"index;not null"`
	Quantity  int
	Rate      float64
}

// TableName overrides GORM's default to "moqs".
func (MOQDTO) TableName() string {
	return "moqs"
}

func fromDomain(p *product.Product) ProductDTO {
	images := p.Images()
	return ProductDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Price:        p.Price(),
		Description:  p.Description(),
		Status:       p.Status().String(),
		GroupID:      p.GroupID(),
		SpecialPrice: p.SpecialPrice(),
		Image1:       images[0],
		Image2:       images[1],
		Image3:       images[2],
		Image4:       images[3],
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	images := [product.ImageSlots]*string{dto.Image1, dto.Image2, dto.Image3, dto.Image4}
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Price,
		dto.Description,
		product.Status(dto.Status),
		dto.GroupID,
		dto.SpecialPrice,
		images,
	)
}

func tierFromDTO(dto MOQDTO) (product.Tier, error) {
	return product.NewTier(dto.Quantity, dto.Rate)
}
