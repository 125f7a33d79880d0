package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrChangePasswordCommandIsNotConstructed is returned when the command
// was not created through NewChangePasswordCommand.
var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand rotates a user's password after verifying the
// current one.
type ChangePasswordCommand struct {
	userID          int64
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand builds the command.
func NewChangePasswordCommand(userID int64, currentPassword, newPassword string) (ChangePasswordCommand, error) {
	if userID <= 0 {
		return ChangePasswordCommand{}, errs.NewValueIsInvalidError("userId")
	}
	if currentPassword == "" {
		return ChangePasswordCommand{}, errs.NewValueIsRequiredError("currentPassword")
	}
	if len(newPassword) < minPasswordLength {
		return ChangePasswordCommand{}, errs.NewValueIsInvalidError("newPassword")
	}

	return ChangePasswordCommand{
		userID:          userID,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// UserID returns the account being changed.
func (c ChangePasswordCommand) UserID() int64 {
	return c.userID
}

// CurrentPassword returns the password being replaced.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}
