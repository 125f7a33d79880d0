package grouprepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/group"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGroupRepository implements ports.GroupRepository using GORM.
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a group repository on the given
// connection or transaction.
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// Add inserts the group row and binds the generated id.
func (r *GormGroupRepository) Add(ctx context.Context, aggregate *group.Group) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	if err := aggregate.BindID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Get retrieves a group by id.
func (r *GormGroupRepository) Get(ctx context.Context, id int64) (*group.Group, error) {
	var dto GroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("groupId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every group, newest first.
func (r *GormGroupRepository) GetAll(ctx context.Context) ([]*group.Group, error) {
	var dtos []GroupDTO
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

// SearchByName retrieves groups whose name contains the fragment,
// case-insensitive, newest first.
func (r *GormGroupRepository) SearchByName(ctx context.Context, name string) ([]*group.Group, error) {
	var dtos []GroupDTO
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainList(dtos)
}

func (r *GormGroupRepository) toDomainList(dtos []GroupDTO) ([]*group.Group, error) {
	groups := make([]*group.Group, 0, len(dtos))
	for _, dto := range dtos {
		g, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// UpdatePartial applies the non-nil patch fields to the row.
func (r *GormGroupRepository) UpdatePartial(ctx context.Context, id int64, patch ports.GroupPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Active != nil {
		fields["active"] = *patch.Active
	}

	result := r.db.WithContext(ctx).Model(&GroupDTO{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the group row. Returns whether it existed. Membership
// checks happen in the delete-group operation, not here.
func (r *GormGroupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&GroupDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
