package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUpdateUserCommandIsNotConstructed is returned when the command was
// not created through NewUpdateUserCommand.
var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand applies a partial update to a user row. Password
// changes go through ChangePasswordCommand, never the patch.
type UpdateUserCommand struct {
	userID int64
	patch  ports.UserPatch

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand builds the command.
func NewUpdateUserCommand(userID int64, patch ports.UserPatch) (UpdateUserCommand, error) {
	if userID <= 0 {
		return UpdateUserCommand{}, errs.NewValueIsInvalidError("userId")
	}
	if patch.Name != nil && *patch.Name == "" {
		return UpdateUserCommand{}, errs.NewValueIsRequiredError("name")
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		return UpdateUserCommand{}, errs.NewValueIsInvalidError("email")
	}
	if patch.Age != nil && *patch.Age < 0 {
		return UpdateUserCommand{}, errs.NewValueIsInvalidError("age")
	}

	return UpdateUserCommand{
		userID: userID,
		patch:  patch,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the user to update.
func (c UpdateUserCommand) UserID() int64 {
	return c.userID
}

// Patch returns the partial row update.
func (c UpdateUserCommand) Patch() ports.UserPatch {
	return c.patch
}
