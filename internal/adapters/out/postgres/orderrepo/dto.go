// Package orderrepo persists order aggregates and their detail lines.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order header. Status is stored as
// its string form so rows stay readable in the database.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64 `gorm:"index;not null"`
	ItemID         int64
	Quantity       int
	Rate           float64
	Amount         float64
	Status         string `gorm:"size:16;index"`
	TransactionRef *string
	Cancelled      bool
	Address        string
	DeliveryCharge float64
	Email          string
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

// TableName overrides GORM's default to "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO is one itemized line of an order.
type OrderDetailDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OrderID        int64 `gorm:"index;not null"`
	ItemID         int64
	Quantity       int
	Rate           float64
	Amount         float64
	DeliveryCharge float64
}

// TableName overrides GORM's default to "order_details".
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID(),
		CustomerID:     o.CustomerID(),
		ItemID:         o.ItemID(),
		Quantity:       o.Quantity(),
		Rate:           o.Rate(),
		Amount:         o.Amount(),
		Status:         o.Status().String(),
		TransactionRef: o.TransactionRef(),
		Cancelled:      o.Cancelled(),
		Address:        o.Address(),
		DeliveryCharge: o.DeliveryCharge(),
		Email:          o.Email(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.ItemID,
		dto.Quantity,
		dto.Rate,
		dto.Amount,
		status,
		dto.TransactionRef,
		dto.Cancelled,
		dto.Address,
		dto.DeliveryCharge,
		dto.Email,
	)
}

func detailFromDTO(dto OrderDetailDTO) (order.Detail, error) {
	return order.NewDetail(dto.ItemID, dto.Quantity, dto.Rate, dto.Amount, dto.DeliveryCharge)
}
