package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrBulkCancelOrdersCommandIsNotConstructed is returned when the command
// was not created through NewBulkCancelOrdersCommand.
var ErrBulkCancelOrdersCommandIsNotConstructed = errors.New(
	"BulkCancelOrdersCommand must be created via NewBulkCancelOrdersCommand constructor",
)

// BulkCancelOrdersCommand cancels many orders in a single statement,
// setting the cancelled status and the cancel flag together.
type BulkCancelOrdersCommand struct {
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewBulkCancelOrdersCommand builds the command. An empty id list is valid
// and makes the handler a no-op.
func NewBulkCancelOrdersCommand(orderIDs []int64) (BulkCancelOrdersCommand, error) {
	for _, id := range orderIDs {
		if id <= 0 {
			return BulkCancelOrdersCommand{}, errs.NewValueIsInvalidError("orderIds")
		}
	}

	return BulkCancelOrdersCommand{
		orderIDs: append([]int64(nil), orderIDs...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkCancelOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkCancelOrdersCommandIsNotConstructed)
}

// OrderIDs returns the targeted order ids.
func (c BulkCancelOrdersCommand) OrderIDs() []int64 {
	return append([]int64(nil), c.orderIDs...)
}
