package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCreateProductCommandIsNotConstructed is returned when the command was
// not created through NewCreateProductCommand.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand is a request to create a product together with its
// MOQ tier set and, optionally, its images. The tier list and every image
// land atomically with the product row.
type CreateProductCommand struct {
	name         string
	price        float64
	description  string
	groupID      *int64
	specialPrice *float64
	tiers        []product.Tier
	uploads      []ImageUpload

	guard guard.ConstructorGuard
}

// NewCreateProductCommand builds the command. Name and price are required;
// every tier must come from product.NewTier; uploads must address distinct
// slots between 1 and 4.
func NewCreateProductCommand(
	name string,
	price float64,
	description string,
	groupID *int64,
	specialPrice *float64,
	tiers []product.Tier,
	uploads []ImageUpload,
) (CreateProductCommand, error) {
	if name == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price <= 0 {
		return CreateProductCommand{}, errs.NewValueIsInvalidError("price")
	}
	for _, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return CreateProductCommand{}, err
		}
	}
	if err := validateUploads(uploads); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:         name,
		price:        price,
		description:  description,
		groupID:      groupID,
		specialPrice: specialPrice,
		tiers:        append([]product.Tier(nil), tiers...),
		uploads:      append([]ImageUpload(nil), uploads...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the regular price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Description returns the free-form description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// GroupID returns the optional owning group reference.
func (c CreateProductCommand) GroupID() *int64 {
	return c.groupID
}

// SpecialPrice returns the optional promotional price.
func (c CreateProductCommand) SpecialPrice() *float64 {
	return c.specialPrice
}

// Tiers returns the MOQ tier set in input order.
func (c CreateProductCommand) Tiers() []product.Tier {
	return append([]product.Tier(nil), c.tiers...)
}

// Uploads returns the image uploads addressed by slot.
func (c CreateProductCommand) Uploads() []ImageUpload {
	return append([]ImageUpload(nil), c.uploads...)
}
