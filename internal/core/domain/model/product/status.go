package product

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the catalog visibility flag of a product.
// Products are persisted with the single-letter codes used by the
// storefront schema: "A" for active, "I" for inactive.
type Status string

const (
	// StatusActive marks a product as visible and orderable.
	StatusActive Status = "A"

	// StatusInactive marks a product as hidden from the catalog.
	StatusInactive Status = "I"
)

// Validate checks that the status is one of the known codes.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid product status", string(s)),
		)
	}
	return nil
}

// IsActive reports whether the product is visible in the catalog.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// String returns the persisted single-letter code.
func (s Status) String() string {
	return string(s)
}
