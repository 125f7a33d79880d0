package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates an order repository on the given
// connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func wrapWriteError(paramName string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConflictErrorWithCause(paramName, err)
	}
	return err
}

// Add inserts the order row and binds the generated id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, wrapWriteError("order", err)
	}

	if err := aggregate.BindID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, most recently created first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Update persists the full current state of an order, status and cancel
// flag included. Select("*") forces zero values like cancelled=false
// through GORM's struct update.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return wrapWriteError("order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.ID)
	}
	return nil
}

// UpdatePartial applies the non-nil patch fields to the row.
func (r *GormOrderRepository) UpdatePartial(ctx context.Context, id int64, patch ports.OrderPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	fields := map[string]any{}
	if patch.Quantity != nil {
		fields["quantity"] = *patch.Quantity
	}
	if patch.Rate != nil {
		fields["rate"] = *patch.Rate
	}
	if patch.Amount != nil {
		fields["amount"] = *patch.Amount
	}
	if patch.TransactionRef != nil {
		fields["transaction_ref"] = *patch.TransactionRef
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.DeliveryCharge != nil {
		fields["delivery_charge"] = *patch.DeliveryCharge
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, wrapWriteError("order", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the order row. Returns whether it existed.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, wrapWriteError("order", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// BulkUpdateStatus sets the status of every listed order in one
// statement. An empty id list issues no statement.
func (r *GormOrderRepository) BulkUpdateStatus(ctx context.Context, ids []int64, status order.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id IN ?", ids).
		Update("status", status.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// BulkCancel moves every listed order to cancelled, raising the cancel
// flag in the same statement.
func (r *GormOrderRepository) BulkCancel(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":    order.Cancelled.String(),
			"cancelled": true,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
