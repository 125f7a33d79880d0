package ports

import (
	"context"

	"storefront/internal/core/domain/model/group"
)

// GroupPatch is a partial update of a product group row.
type GroupPatch struct {
	Name   *string
	Active *bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p GroupPatch) IsEmpty() bool {
	return p.Name == nil && p.Active == nil
}

// GroupRepository is the persistence contract for the product_groups
// table. Deletion of a group that products still reference is refused by
// the delete-group operation, not here.
type GroupRepository interface {
	// Add inserts a new group row and binds the generated id to the
	// aggregate. Returns the new id.
	Add(ctx context.Context, aggregate *group.Group) (int64, error)

	// Get retrieves a group by id, or ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*group.Group, error)

	// GetAll retrieves every group, newest first (id descending).
	GetAll(ctx context.Context) ([]*group.Group, error)

	// SearchByName retrieves groups whose name contains the given
	// fragment, case-insensitive, newest first.
	SearchByName(ctx context.Context, name string) ([]*group.Group, error)

	// UpdatePartial applies the non-nil fields of the patch to the row.
	// An empty patch reports no change without touching the database.
	UpdatePartial(ctx context.Context, id int64, patch GroupPatch) (bool, error)

	// Delete removes the group row. Returns whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
