package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a customer order. It carries a flat single line (item, quantity,
// rate, amount) and may additionally own itemized Detail rows; both forms
// coexist and the flat amount is not reconciled against the detail sum.
//
// Orders start in pending status. Status changes follow the transition
// rules in Status; cancellation is a combined operation that moves the
// status to cancelled and raises the cancel flag in one step.
type Order struct {
	id             int64
	customerID     int64
	itemID         int64
	quantity       int
	rate           float64
	amount         float64
	status         Status
	transactionRef *string
	cancelled      bool
	address        string
	deliveryCharge float64
	email          string

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order. Customer reference, delivery address
// and contact email are required. The item reference may be zero when the
// order is itemized through detail rows instead of the flat line.
func NewOrder(
	customerID int64,
	itemID int64,
	quantity int,
	rate float64,
	amount float64,
	address string,
	deliveryCharge float64,
	email string,
) (*Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if itemID < 0 {
		return nil, errs.NewValueIsInvalidError("itemId")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}
	if rate < 0 {
		return nil, errs.NewValueIsInvalidError("rate")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if deliveryCharge < 0 {
		return nil, errs.NewValueIsInvalidError("deliveryCharge")
	}

	return &Order{
		customerID:     customerID,
		itemID:         itemID,
		quantity:       quantity,
		rate:           rate,
		amount:         amount,
		status:         Pending,
		address:        address,
		deliveryCharge: deliveryCharge,
		email:          email,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from its persisted state.
func RestoreOrder(
	id int64,
	customerID int64,
	itemID int64,
	quantity int,
	rate float64,
	amount float64,
	status Status,
	transactionRef *string,
	cancelled bool,
	address string,
	deliveryCharge float64,
	email string,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if cancelled && status != Cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"cancelled",
			fmt.Errorf("cancel flag set while status is %s", status),
		)
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		itemID:         itemID,
		quantity:       quantity,
		rate:           rate,
		amount:         amount,
		status:         status,
		transactionRef: transactionRef,
		cancelled:      cancelled,
		address:        address,
		deliveryCharge: deliveryCharge,
		email:          email,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the surrogate key, or zero before the first insert.
func (o *Order) ID() int64 {
	return o.id
}

// BindID attaches the database-generated identifier after insert.
func (o *Order) BindID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already bound to id %d", o.id))
	}
	o.id = id
	return nil
}

// CustomerID returns the ordering customer reference.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// ItemID returns the flat-line item reference, zero for itemized orders.
func (o *Order) ItemID() int64 {
	return o.itemID
}

// Quantity returns the flat-line quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Rate returns the flat-line per-unit rate.
func (o *Order) Rate() float64 {
	return o.rate
}

// Amount returns the order total.
func (o *Order) Amount() float64 {
	return o.amount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TransactionRef returns the payment reference, or nil when unpaid.
func (o *Order) TransactionRef() *string {
	return o.transactionRef
}

// SetTransactionRef records the payment reference.
func (o *Order) SetTransactionRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("transactionRef")
	}
	o.transactionRef = &ref
	return nil
}

// Cancelled reports whether the order was cancelled.
func (o *Order) Cancelled() bool {
	return o.cancelled
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// DeliveryCharge returns the order-level delivery charge.
func (o *Order) DeliveryCharge() float64 {
	return o.deliveryCharge
}

// Email returns the contact email.
func (o *Order) Email() string {
	return o.email
}

// ChangeStatus moves the order to the next lifecycle status, enforcing
// the transition rules. Cancellation must go through Cancel so the cancel
// flag stays consistent with the status.
func (o *Order) ChangeStatus(next Status) error {
	if next == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("use Cancel to cancel an order"),
		)
	}

	status, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

// Cancel moves the order to cancelled status and raises the cancel flag
// as one combined transition. Allowed only from pending or processing.
func (o *Order) Cancel() error {
	status, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = status
	o.cancelled = true
	return nil
}
