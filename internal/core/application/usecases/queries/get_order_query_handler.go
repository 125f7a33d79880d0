package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines using direct SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler over a GORM connection.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its lines, or ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&response.ID,
		&response.CustomerID,
		&response.ItemID,
		&response.Quantity,
		&response.Rate,
		&response.Amount,
		&response.Status,
		&response.TransactionRef,
		&response.Cancelled,
		&response.Address,
		&response.DeliveryCharge,
		&response.Email,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT item_id, quantity, rate, amount, delivery_charge
		FROM order_details
		WHERE order_id = ?
		ORDER BY id ASC
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLine
		err = rows.Scan(&line.ItemID, &line.Quantity, &line.Rate, &line.Amount, &line.DeliveryCharge)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
