package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUpdateProductCommandIsNotConstructed is returned when the command was
// not created through NewUpdateProductCommand.
var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand is a request to update a product row, optionally
// replacing its MOQ tier set and any of its images, as one atomic unit.
//
// The tier set is replaced only when replaceTiers is true; a true flag
// with an empty list clears all tiers. Image slots named by the uploads
// are replaced: the old stored image is released only after the new row
// state has committed.
type UpdateProductCommand struct {
	productID    int64
	patch        ports.ProductPatch
	tiers        []product.Tier
	replaceTiers bool
	uploads      []ImageUpload

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand builds the command. Image references inside the
// patch are rejected: image slots change only through uploads so the old
// content is always released.
func NewUpdateProductCommand(
	productID int64,
	patch ports.ProductPatch,
	tiers []product.Tier,
	replaceTiers bool,
	uploads []ImageUpload,
) (UpdateProductCommand, error) {
	if productID <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidError("productId")
	}
	if patch.Image1 != nil || patch.Image2 != nil || patch.Image3 != nil || patch.Image4 != nil {
		return UpdateProductCommand{}, errs.NewValueIsInvalidErrorWithCause("patch",
			errors.New("image slots change through uploads, not the patch"))
	}
	if patch.Name != nil && *patch.Name == "" {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidError("price")
	}
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return UpdateProductCommand{}, err
		}
	}
	for _, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return UpdateProductCommand{}, err
		}
	}
	if err := validateUploads(uploads); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:    productID,
		patch:        patch,
		tiers:        append([]product.Tier(nil), tiers...),
		replaceTiers: replaceTiers,
		uploads:      append([]ImageUpload(nil), uploads...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product to update.
func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

// Patch returns the partial row update.
func (c UpdateProductCommand) Patch() ports.ProductPatch {
	return c.patch
}

// Tiers returns the replacement tier set; meaningful only when
// ReplaceTiers reports true.
func (c UpdateProductCommand) Tiers() []product.Tier {
	return append([]product.Tier(nil), c.tiers...)
}

// ReplaceTiers reports whether the tier set is part of the update.
func (c UpdateProductCommand) ReplaceTiers() bool {
	return c.replaceTiers
}

// Uploads returns the image uploads addressed by slot.
func (c UpdateProductCommand) Uploads() []ImageUpload {
	return append([]ImageUpload(nil), c.uploads...)
}
