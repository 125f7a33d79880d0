package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves every order, most recently created first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates the parameterless order listing query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one order listing row.
type GetOrdersQueryResponse struct {
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
}
