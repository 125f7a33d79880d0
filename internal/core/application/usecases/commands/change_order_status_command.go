package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrChangeOrderStatusCommandIsNotConstructed is returned when the command
// was not created through NewChangeOrderStatusCommand.
var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand advances a single order along the status
// machine. Unlike the bulk form, the transition is checked against the
// order's current status.
type ChangeOrderStatusCommand struct {
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand builds the command. Cancellation goes
// through CancelOrderCommand so the cancel flag stays in step.
func NewChangeOrderStatusCommand(orderID int64, status order.Status) (ChangeOrderStatusCommand, error) {
	if orderID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if err := status.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if status == order.Cancelled {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidError("status")
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the targeted order.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}
