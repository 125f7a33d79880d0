package orderrepo

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderDetailRepository implements ports.OrderDetailRepository using
// GORM. Detail rows exist only as batches bound to an order.
type GormOrderDetailRepository struct {
	db *gorm.DB
}

// NewGormOrderDetailRepository creates a detail repository on the given
// connection or transaction.
func NewGormOrderDetailRepository(db *gorm.DB) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{db: db}
}

// ListByOrder returns the detail lines of an order in insert order.
func (r *GormOrderDetailRepository) ListByOrder(ctx context.Context, orderID int64) ([]order.Detail, error) {
	var dtos []OrderDetailDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	details := make([]order.Detail, 0, len(dtos))
	for _, dto := range dtos {
		detail, detailErr := detailFromDTO(dto)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, detail)
	}

	return details, nil
}

// AddBatch inserts the detail lines bound to the order, in list order.
func (r *GormOrderDetailRepository) AddBatch(ctx context.Context, orderID int64, details []order.Detail) error {
	if len(details) == 0 {
		return nil
	}

	dtos := make([]OrderDetailDTO, 0, len(details))
	for _, detail := range details {
		dtos = append(dtos, OrderDetailDTO{
			OrderID:        orderID,
			ItemID:         detail.ItemID(),
			Quantity:       detail.Quantity(),
			Rate:           detail.Rate(),
			Amount:         detail.Amount(),
			DeliveryCharge: detail.DeliveryCharge(),
		})
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return wrapWriteError("orderDetail", err)
	}
	return nil
}

// DeleteByOrder removes every detail line of the order.
func (r *GormOrderDetailRepository) DeleteByOrder(ctx context.Context, orderID int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&OrderDetailDTO{}, "order_id = ?", orderID)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
