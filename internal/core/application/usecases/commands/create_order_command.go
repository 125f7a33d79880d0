package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was
// not created through NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a request to create an order together with its
// detail lines. The order header and every detail land atomically.
//
// An order references its items either through the flat item fields on the
// header or through detail lines; at least one of the two forms must be
// present.
type CreateOrderCommand struct {
	customerID     int64
	itemID         int64
	quantity       int
	rate           float64
	amount         float64
	address        string
	deliveryCharge float64
	email          string
	details        []order.Detail

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand builds the command. Customer, address and email
// are required; every detail must come from order.NewDetail.
func NewCreateOrderCommand(
	customerID int64,
	itemID int64,
	quantity int,
	rate float64,
	amount float64,
	address string,
	deliveryCharge float64,
	email string,
	details []order.Detail,
) (CreateOrderCommand, error) {
	if customerID <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("customerId")
	}
	if address == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if email == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("email")
	}
	if itemID <= 0 && len(details) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		customerID:     customerID,
		itemID:         itemID,
		quantity:       quantity,
		rate:           rate,
		amount:         amount,
		address:        address,
		deliveryCharge: deliveryCharge,
		email:          email,
		details:        append([]order.Detail(nil), details...),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// ItemID returns the flat item reference, zero when itemized via details.
func (c CreateOrderCommand) ItemID() int64 {
	return c.itemID
}

// Quantity returns the flat line quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Rate returns the flat per-unit rate.
func (c CreateOrderCommand) Rate() float64 {
	return c.rate
}

// Amount returns the order total.
func (c CreateOrderCommand) Amount() float64 {
	return c.amount
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryCharge returns the delivery charge on the header.
func (c CreateOrderCommand) DeliveryCharge() float64 {
	return c.deliveryCharge
}

// Email returns the contact email.
func (c CreateOrderCommand) Email() string {
	return c.email
}

// Details returns the detail lines in input order.
func (c CreateOrderCommand) Details() []order.Detail {
	return append([]order.Detail(nil), c.details...)
}
