package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrDeleteGroupCommandIsNotConstructed is returned when the command was
// not created through NewDeleteGroupCommand.
var ErrDeleteGroupCommandIsNotConstructed = errors.New(
	"DeleteGroupCommand must be created via NewDeleteGroupCommand constructor",
)

// DeleteGroupCommand is a request to remove a product group. A group that
// still has products referencing it cannot be removed.
type DeleteGroupCommand struct {
	groupID int64

	guard guard.ConstructorGuard
}

// NewDeleteGroupCommand builds the command.
func NewDeleteGroupCommand(groupID int64) (DeleteGroupCommand, error) {
	if groupID <= 0 {
		return DeleteGroupCommand{}, errs.NewValueIsInvalidError("groupId")
	}

	return DeleteGroupCommand{
		groupID: groupID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteGroupCommand) Validate() error {
	return c.guard.Validate(ErrDeleteGroupCommandIsNotConstructed)
}

// GroupID returns the group to delete.
func (c DeleteGroupCommand) GroupID() int64 {
	return c.groupID
}
