package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrDetailIsNotConstructed is returned when a Detail was not created
// through the NewDetail factory method.
var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail constructor")

// Detail is one itemized line of an order: an item reference with its
// quantity, rate and computed amount. Details are only ever created in a
// batch together with their owning order and are removed with it.
type Detail struct {
	itemID         int64
	quantity       int
	rate           float64
	amount         float64
	deliveryCharge float64

	guard guard.ConstructorGuard
}

// NewDetail creates an order line. The item reference and quantity must be
// positive; rate, amount and delivery charge must not be negative.
func NewDetail(itemID int64, quantity int, rate, amount, deliveryCharge float64) (Detail, error) {
	if itemID <= 0 {
		return Detail{}, errs.NewValueIsInvalidError("itemId")
	}
	if quantity <= 0 {
		return Detail{}, errs.NewValueIsInvalidError("quantity")
	}
	if rate < 0 {
		return Detail{}, errs.NewValueIsInvalidError("rate")
	}
	if amount < 0 {
		return Detail{}, errs.NewValueIsInvalidError("amount")
	}
	if deliveryCharge < 0 {
		return Detail{}, errs.NewValueIsInvalidError("deliveryCharge")
	}

	return Detail{
		itemID:         itemID,
		quantity:       quantity,
		rate:           rate,
		amount:         amount,
		deliveryCharge: deliveryCharge,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the detail was created through the constructor.
func (d Detail) Validate() error {
	return d.guard.Validate(ErrDetailIsNotConstructed)
}

// ItemID returns the referenced item.
func (d Detail) ItemID() int64 {
	return d.itemID
}

// Quantity returns the ordered quantity.
func (d Detail) Quantity() int {
	return d.quantity
}

// Rate returns the per-unit rate applied to the line.
func (d Detail) Rate() float64 {
	return d.rate
}

// Amount returns the line total.
func (d Detail) Amount() float64 {
	return d.amount
}

// DeliveryCharge returns the delivery charge attributed to the line.
func (d Detail) DeliveryCharge() float64 {
	return d.deliveryCharge
}
