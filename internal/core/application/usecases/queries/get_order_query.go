package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order header with its itemized lines.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order id.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("orderId")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the id of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryLine is one itemized line of the order detail read model.
type GetOrderQueryLine struct {
	ItemID         int64
	Quantity       int
	Rate           float64
	Amount         float64
	DeliveryCharge float64
}

// GetOrderQueryResponse is the order detail read model.
type GetOrderQueryResponse struct {
	ID             int64
	CustomerID     int64
	ItemID         int64
	Quantity       int
	Rate           float64
	Amount         float64
	Status         string
	TransactionRef *string
	Cancelled      bool
	Address        string
	DeliveryCharge float64
	Email          string
	CreatedAt      time.Time
	Lines          []GetOrderQueryLine
}
