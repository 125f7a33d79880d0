package queries

import (
	"errors"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one product with its MOQ tiers and display
// URLs resolved for every stored image. Image options request a sized
// rendition from stores that support transformations; zero values mean
// the original size.
type GetProductQuery struct {
	productID    int64
	imageOptions ports.ImageOptions

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for the given product id.
func NewGetProductQuery(productID int64, imageOptions ports.ImageOptions) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidError("productId")
	}
	if imageOptions.Width < 0 || imageOptions.Height < 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidError("imageOptions")
	}

	return GetProductQuery{
		productID:    productID,
		imageOptions: imageOptions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the id of the requested product.
func (q GetProductQuery) ProductID() int64 {
	return q.productID
}

// ImageOptions returns the requested display rendition.
func (q GetProductQuery) ImageOptions() ports.ImageOptions {
	return q.imageOptions
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// GetProductQueryTier is one MOQ pricing row of the product detail.
type GetProductQueryTier struct {
	Quantity int
	Rate     float64
}

// GetProductQueryResponse is the product detail read model. ImageURLs are
// resolved display URLs, ready for the frontend.
type GetProductQueryResponse struct {
	ID           int64
	Name         string
	Price        float64
	Description  string
	Status       string
	GroupID      *int64
	GroupName    *string
	SpecialPrice *float64
	ImageURLs    []string
	Tiers        []GetProductQueryTier
}
