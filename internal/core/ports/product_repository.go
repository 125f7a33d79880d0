package ports

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// ProductPatch is a partial update of a product row. Only non-nil fields
// are written; a patch with every field nil is a no-op.
type ProductPatch struct {
	Name         *string
	Price        *float64
	Description  *string
	Status       *product.Status
	GroupID      *int64
	SpecialPrice *float64
	Image1       *string
	Image2       *string
	Image3       *string
	Image4       *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil &&
		p.Status == nil && p.GroupID == nil && p.SpecialPrice == nil &&
		p.Image1 == nil && p.Image2 == nil && p.Image3 == nil && p.Image4 == nil
}

// ImageRef returns the patched reference for an image slot (1-based),
// or nil when the slot is not part of the patch.
func (p *ProductPatch) ImageRef(slot int) *string {
	switch slot {
	case 1:
		return p.Image1
	case 2:
		return p.Image2
	case 3:
		return p.Image3
	case 4:
		return p.Image4
	default:
		return nil
	}
}

// SetImageRef includes an image slot (1-based) in the patch.
func (p *ProductPatch) SetImageRef(slot int, ref string) {
	switch slot {
	case 1:
		p.Image1 = &ref
	case 2:
		p.Image2 = &ref
	case 3:
		p.Image3 = &ref
	case 4:
		p.Image4 = &ref
	}
}

// ProductRepository is the persistence contract for the products table.
// It has no cross-table knowledge; multi-table writes go through the
// command handlers and the unit of work.
type ProductRepository interface {
	// Add inserts a new product row and binds the generated id to the
	// aggregate. Returns the new id.
	Add(ctx context.Context, aggregate *product.Product) (int64, error)

	// Get retrieves a product by id, or ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetAll retrieves every product, newest first (id descending).
	GetAll(ctx context.Context) ([]*product.Product, error)

	// UpdatePartial applies the non-nil fields of the patch to the row.
	// An empty patch reports no change without touching the database.
	// Returns whether the row existed and was written.
	UpdatePartial(ctx context.Context, id int64, patch ProductPatch) (bool, error)

	// Delete removes the product row. Returns whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// CountInGroup returns the number of products referencing a group.
	CountInGroup(ctx context.Context, groupID int64) (int64, error)
}
