package ports

import (
	"context"

	"storefront/internal/core/domain/model/user"
)

// UserPatch is a partial update of a user row. Only non-nil fields are
// written; a patch with every field nil is a no-op. The password hash
// changes only through the change-password operation.
type UserPatch struct {
	Name   *string
	Email  *string
	Age    *int
	Active *bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil && p.Active == nil
}

// UserRepository is the persistence contract for the users table.
// Accounts are soft-deleted: Delete clears the active flag and keeps
// the row.
type UserRepository interface {
	// Add inserts a new user row and binds the generated id to the
	// aggregate. A duplicate email surfaces as ConflictError.
	Add(ctx context.Context, aggregate *user.User) (int64, error)

	// Get retrieves a user by id, or ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves a user by unique email, or ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetAll retrieves every user, newest first (id descending).
	GetAll(ctx context.Context) ([]*user.User, error)

	// Update persists the current state of an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// UpdatePartial applies the non-nil fields of the patch to the row.
	// An empty patch reports no change without touching the database.
	UpdatePartial(ctx context.Context, id int64, patch UserPatch) (bool, error)

	// Delete deactivates the account. Returns whether the row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
