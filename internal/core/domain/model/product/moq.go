package product

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrTierIsNotConstructed is returned when a Tier was not created through
// the NewTier factory method.
var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier is a minimum-order-quantity pricing tier: the rate that applies at
// or above a quantity threshold. The full set of tiers for a product is
// always written and replaced as a unit, never edited row by row.
type Tier struct {
	quantity int
	rate     float64

	guard guard.ConstructorGuard
}

// NewTier creates a pricing tier. The quantity threshold must be positive
// and the rate must be greater than zero.
func NewTier(quantity int, rate float64) (Tier, error) {
	if quantity <= 0 {
		return Tier{}, errs.NewValueIsInvalidError("moq")
	}
	if rate <= 0 {
		return Tier{}, errs.NewValueIsInvalidError("rate")
	}

	return Tier{
		quantity: quantity,
		rate:     rate,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the tier was created through the constructor.
func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// Quantity returns the threshold at which the tier's rate applies.
func (t Tier) Quantity() int {
	return t.quantity
}

// Rate returns the per-unit rate at or above the threshold.
func (t Tier) Rate() float64 {
	return t.rate
}
