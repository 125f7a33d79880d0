package commands

import (
	"errors"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUpdateGroupCommandIsNotConstructed is returned when the command was
// not created through NewUpdateGroupCommand.
var ErrUpdateGroupCommandIsNotConstructed = errors.New(
	"UpdateGroupCommand must be created via NewUpdateGroupCommand constructor",
)

// UpdateGroupCommand applies a partial update to a product group row.
type UpdateGroupCommand struct {
	groupID int64
	patch   ports.GroupPatch

	guard guard.ConstructorGuard
}

// NewUpdateGroupCommand builds the command.
func NewUpdateGroupCommand(groupID int64, patch ports.GroupPatch) (UpdateGroupCommand, error) {
	if groupID <= 0 {
		return UpdateGroupCommand{}, errs.NewValueIsInvalidError("groupId")
	}
	if patch.Name != nil && *patch.Name == "" {
		return UpdateGroupCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateGroupCommand{
		groupID: groupID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateGroupCommand) Validate() error {
	return c.guard.Validate(ErrUpdateGroupCommandIsNotConstructed)
}

// GroupID returns the group to update.
func (c UpdateGroupCommand) GroupID() int64 {
	return c.groupID
}

// Patch returns the partial row update.
func (c UpdateGroupCommand) Patch() ports.GroupPatch {
	return c.patch
}
