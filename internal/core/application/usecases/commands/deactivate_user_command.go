package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrDeactivateUserCommandIsNotConstructed is returned when the command
// was not created through NewDeactivateUserCommand.
var ErrDeactivateUserCommandIsNotConstructed = errors.New(
	"DeactivateUserCommand must be created via NewDeactivateUserCommand constructor",
)

// DeactivateUserCommand retires a user account. The row stays; only the
// active flag drops.
type DeactivateUserCommand struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewDeactivateUserCommand builds the command.
func NewDeactivateUserCommand(userID int64) (DeactivateUserCommand, error) {
	if userID <= 0 {
		return DeactivateUserCommand{}, errs.NewValueIsInvalidError("userId")
	}

	return DeactivateUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateUserCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateUserCommandIsNotConstructed)
}

// UserID returns the account being retired.
func (c DeactivateUserCommand) UserID() int64 {
	return c.userID
}
