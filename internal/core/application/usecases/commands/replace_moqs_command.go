package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrReplaceMOQsCommandIsNotConstructed is returned when the command was
// not created through NewReplaceMOQsCommand.
var ErrReplaceMOQsCommandIsNotConstructed = errors.New(
	"ReplaceMOQsCommand must be created via NewReplaceMOQsCommand constructor",
)

// ReplaceMOQsCommand is a request to swap the entire MOQ tier set of a
// product. An empty tier list is valid and clears all tiers.
type ReplaceMOQsCommand struct {
	productID int64
	tiers     []product.Tier

	guard guard.ConstructorGuard
}

// NewReplaceMOQsCommand builds the command for an existing product id.
func NewReplaceMOQsCommand(productID int64, tiers []product.Tier) (ReplaceMOQsCommand, error) {
	if productID <= 0 {
		return ReplaceMOQsCommand{}, errs.NewValueIsInvalidError("productId")
	}
	for _, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return ReplaceMOQsCommand{}, err
		}
	}

	return ReplaceMOQsCommand{
		productID: productID,
		tiers:     append([]product.Tier(nil), tiers...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceMOQsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceMOQsCommandIsNotConstructed)
}

// ProductID returns the owning product.
func (c ReplaceMOQsCommand) ProductID() int64 {
	return c.productID
}

// Tiers returns the replacement tier set in input order.
func (c ReplaceMOQsCommand) Tiers() []product.Tier {
	return append([]product.Tier(nil), c.tiers...)
}
