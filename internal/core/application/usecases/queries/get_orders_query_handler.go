package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order listing with direct SQL.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler over a GORM connection.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns every order, created_at descending.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			item_id,
			quantity,
			rate,
			amount,
			status,
			transaction_ref,
			cancelled,
			address,
			delivery_charge,
			email,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetOrdersQueryResponse

		err = rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.ItemID,
			&o.Quantity,
			&o.Rate,
			&o.Amount,
			&o.Status,
			&o.TransactionRef,
			&o.Cancelled,
			&o.Address,
			&o.DeliveryCharge,
			&o.Email,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
