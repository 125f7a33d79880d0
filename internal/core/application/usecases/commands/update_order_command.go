package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when the command was
// not created through NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand applies a partial update to an order row. Status and
// cancellation are excluded from the patch; they move only through the
// status and cancel commands.
type UpdateOrderCommand struct {
	orderID int64
	patch   ports.OrderPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand builds the command.
func NewUpdateOrderCommand(orderID int64, patch ports.OrderPatch) (UpdateOrderCommand, error) {
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if patch.Address != nil && *patch.Address == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("email")
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("quantity")
	}
	if patch.Rate != nil && *patch.Rate < 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("rate")
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("amount")
	}
	if patch.DeliveryCharge != nil && *patch.DeliveryCharge < 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("deliveryCharge")
	}

	return UpdateOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Patch returns the partial row update.
func (c UpdateOrderCommand) Patch() ports.OrderPatch {
	return c.patch
}
