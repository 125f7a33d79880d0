package userrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM. Accounts
// are soft-deleted: Delete drops the active flag and keeps the row.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a user repository on the given connection
// or transaction.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func wrapWriteError(paramName string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConflictErrorWithCause(paramName, err)
	}
	return err
}

// Add inserts the user row and binds the generated id. A duplicate email
// surfaces as a ConflictError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, wrapWriteError("email", err)
	}

	if err := aggregate.BindID(dto.ID); err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by unique email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every user, newest first.
func (r *GormUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// Update persists the full current state of a user aggregate.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return wrapWriteError("email", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", dto.ID)
	}
	return nil
}

// UpdatePartial applies the non-nil patch fields to the row.
func (r *GormUserRepository) UpdatePartial(ctx context.Context, id int64, patch ports.UserPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Age != nil {
		fields["age"] = *patch.Age
	}
	if patch.Active != nil {
		fields["active"] = *patch.Active
	}

	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, wrapWriteError("email", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Delete deactivates the account. Returns whether the row existed.
func (r *GormUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
