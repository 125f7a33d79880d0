package product

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ImageSlots is the number of image references a product row can carry.
const ImageSlots = 4

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item. It owns up to four stored image references
// and the set of MOQ pricing tiers bound to it; both follow the product's
// lifecycle and are released when the product is deleted.
//
// The identifier is a database surrogate key: zero until the product row
// is inserted, after which the repository binds the generated id.
type Product struct {
	id           int64
	name         string
	price        float64
	description  string
	status       Status
	groupID      *int64
	specialPrice *float64
	images       [ImageSlots]*string

	guard guard.ConstructorGuard
}

// NewProduct creates a product in active status. Name and price are
// required; price must be greater than zero.
func NewProduct(name string, price float64, description string) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price <= 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return &Product{
		name:        name,
		price:       price,
		description: description,
		status:      StatusActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct rebuilds a product from its persisted state.
func RestoreProduct(
	id int64,
	name string,
	price float64,
	description string,
	status Status,
	groupID *int64,
	specialPrice *float64,
	images [ImageSlots]*string,
) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		id:           id,
		name:         name,
		price:        price,
		description:  description,
		status:       status,
		groupID:      groupID,
		specialPrice: specialPrice,
		images:       images,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the surrogate key, or zero before the first insert.
func (p *Product) ID() int64 {
	return p.id
}

// BindID attaches the database-generated identifier after insert.
// It fails if the product already has an id.
func (p *Product) BindID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if p.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("product already bound to id %d", p.id))
	}
	p.id = id
	return nil
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the regular price.
func (p *Product) Price() float64 {
	return p.price
}

// Description returns the free-form description.
func (p *Product) Description() string {
	return p.description
}

// Status returns the catalog visibility flag.
func (p *Product) Status() Status {
	return p.status
}

// SetStatus changes the catalog visibility flag.
func (p *Product) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// GroupID returns the owning product group reference, or nil.
func (p *Product) GroupID() *int64 {
	return p.groupID
}

// SetGroup attaches the product to a product group.
func (p *Product) SetGroup(groupID int64) error {
	if groupID <= 0 {
		return errs.NewValueIsInvalidError("groupId")
	}
	p.groupID = &groupID
	return nil
}

// ClearGroup detaches the product from its group.
func (p *Product) ClearGroup() {
	p.groupID = nil
}

// SpecialPrice returns the promotional price, or nil when unset.
func (p *Product) SpecialPrice() *float64 {
	return p.specialPrice
}

// SetSpecialPrice sets a promotional price below or equal to the
// regular price.
func (p *Product) SetSpecialPrice(price float64) error {
	if price <= 0 || price > p.price {
		return errs.NewValueIsInvalidError("specialPrice")
	}
	p.specialPrice = &price
	return nil
}

// ImageAt returns the stored image reference in the given slot (1-based),
// or nil when the slot is empty.
func (p *Product) ImageAt(slot int) (*string, error) {
	if slot < 1 || slot > ImageSlots {
		return nil, errs.NewValueIsInvalidError("imageSlot")
	}
	return p.images[slot-1], nil
}

// SetImage stores an image reference in the given slot (1-based),
// replacing any previous reference.
func (p *Product) SetImage(slot int, ref string) error {
	if slot < 1 || slot > ImageSlots {
		return errs.NewValueIsInvalidError("imageSlot")
	}
	if ref == "" {
		return errs.NewValueIsRequiredError("imageRef")
	}
	p.images[slot-1] = &ref
	return nil
}

// ClearImage empties the given slot (1-based).
func (p *Product) ClearImage(slot int) error {
	if slot < 1 || slot > ImageSlots {
		return errs.NewValueIsInvalidError("imageSlot")
	}
	p.images[slot-1] = nil
	return nil
}

// Images returns the four image slots as stored, empty slots nil.
func (p *Product) Images() [ImageSlots]*string {
	return p.images
}

// ImageRefs returns the non-empty stored references in slot order.
func (p *Product) ImageRefs() []string {
	refs := make([]string, 0, ImageSlots)
	for _, img := range p.images {
		if img != nil && *img != "" {
			refs = append(refs, *img)
		}
	}
	return refs
}
