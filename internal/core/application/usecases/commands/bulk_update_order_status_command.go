package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrBulkUpdateOrderStatusCommandIsNotConstructed is returned when the
// command was not created through NewBulkUpdateOrderStatusCommand.
var ErrBulkUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"BulkUpdateOrderStatusCommand must be created via NewBulkUpdateOrderStatusCommand constructor",
)

// BulkUpdateOrderStatusCommand sets the status of many orders in a single
// statement. The status value is validated; per-row transition legality is
// not rechecked across a bulk set.
type BulkUpdateOrderStatusCommand struct {
	orderIDs []int64
	status   order.Status

	guard guard.ConstructorGuard
}

// NewBulkUpdateOrderStatusCommand builds the command. An empty id list is
// valid and makes the handler a no-op. Cancellation goes through
// BulkCancelOrdersCommand so the cancel flag stays in step.
func NewBulkUpdateOrderStatusCommand(orderIDs []int64, status order.Status) (BulkUpdateOrderStatusCommand, error) {
	if err := status.Validate(); err != nil {
		return BulkUpdateOrderStatusCommand{}, err
	}
	if status == order.Cancelled {
		return BulkUpdateOrderStatusCommand{}, errs.NewValueIsInvalidError("status")
	}
	for _, id := range orderIDs {
		if id <= 0 {
			return BulkUpdateOrderStatusCommand{}, errs.NewValueIsInvalidError("orderIds")
		}
	}

	return BulkUpdateOrderStatusCommand{
		orderIDs: append([]int64(nil), orderIDs...),
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkUpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the targeted order ids.
func (c BulkUpdateOrderStatusCommand) OrderIDs() []int64 {
	return append([]int64(nil), c.orderIDs...)
}

// Status returns the target status.
func (c BulkUpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
