package ports

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// MOQRepository is the persistence contract for the moqs table. Tiers are
// written only in batches bound to a product and removed only as a whole
// set; there is no single-row update.
type MOQRepository interface {
	// ListByProduct returns the tiers of a product ascending by quantity.
	ListByProduct(ctx context.Context, productID int64) ([]product.Tier, error)

	// AddBatch inserts the tiers bound to the product, in list order.
	AddBatch(ctx context.Context, productID int64, tiers []product.Tier) error

	// DeleteByProduct removes every tier of the product.
	// Returns the number of rows removed.
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}
