package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrDeleteProductCommandIsNotConstructed is returned when the command was
// not created through NewDeleteProductCommand.
var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand is a request to remove a product together with its
// MOQ tiers and stored images.
type DeleteProductCommand struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand builds the command.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	if productID <= 0 {
		return DeleteProductCommand{}, errs.NewValueIsInvalidError("productId")
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the product to delete.
func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}
