package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderPatch is a partial update of an order row. Only non-nil fields are
// written; a patch with every field nil is a no-op. Status and the cancel
// flag are not part of the patch: they change only through the status and
// cancel operations so the state machine stays enforced.
type OrderPatch struct {
	Quantity       *int
	Rate           *float64
	Amount         *float64
	TransactionRef *string
	Address        *string
	DeliveryCharge *float64
	Email          *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p OrderPatch) IsEmpty() bool {
	return p.Quantity == nil && p.Rate == nil && p.Amount == nil &&
		p.TransactionRef == nil && p.Address == nil &&
		p.DeliveryCharge == nil && p.Email == nil
}

// OrderRepository is the persistence contract for the orders table.
type OrderRepository interface {
	// Add inserts a new order row and binds the generated id to the
	// aggregate. Returns the new id.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Get retrieves an order by id, or ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every order, most recently created first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Update persists the current state of an existing order aggregate,
	// including status and cancel flag.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdatePartial applies the non-nil fields of the patch to the row.
	// An empty patch reports no change without touching the database.
	UpdatePartial(ctx context.Context, id int64, patch OrderPatch) (bool, error)

	// Delete removes the order row. Returns whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// BulkUpdateStatus sets the status of every listed order in one
	// statement. An empty id list is a no-op returning zero.
	BulkUpdateStatus(ctx context.Context, ids []int64, status order.Status) (int64, error)

	// BulkCancel sets status to cancelled and raises the cancel flag for
	// every listed order in one statement. An empty id list is a no-op
	// returning zero.
	BulkCancel(ctx context.Context, ids []int64) (int64, error)
}

// OrderDetailRepository is the persistence contract for the order_details
// table. Details are written only in batches bound to an order and removed
// only together with it.
type OrderDetailRepository interface {
	// ListByOrder returns the detail lines of an order in insert order.
	ListByOrder(ctx context.Context, orderID int64) ([]order.Detail, error)

	// AddBatch inserts the detail lines bound to the order, in list order.
	AddBatch(ctx context.Context, orderID int64, details []order.Detail) error

	// DeleteByOrder removes every detail line of the order.
	// Returns the number of rows removed.
	DeleteByOrder(ctx context.Context, orderID int64) (int64, error)
}
