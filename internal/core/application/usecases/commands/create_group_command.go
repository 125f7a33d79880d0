package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCreateGroupCommandIsNotConstructed is returned when the command was
// not created through NewCreateGroupCommand.
var ErrCreateGroupCommandIsNotConstructed = errors.New(
	"CreateGroupCommand must be created via NewCreateGroupCommand constructor",
)

// CreateGroupCommand is a request to create a product group.
type CreateGroupCommand struct {
	name   string
	active bool

	guard guard.ConstructorGuard
}

// NewCreateGroupCommand builds the command.
func NewCreateGroupCommand(name string, active bool) (CreateGroupCommand, error) {
	if name == "" {
		return CreateGroupCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateGroupCommand{
		name:   name,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateGroupCommandIsNotConstructed)
}

// Name returns the group name.
func (c CreateGroupCommand) Name() string {
	return c.name
}

// Active returns the initial visibility flag.
func (c CreateGroupCommand) Active() bool {
	return c.active
}
