package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrRegisterUserCommandIsNotConstructed is returned when the command was
// not created through NewRegisterUserCommand.
var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 8

// RegisterUserCommand is a request to create a user account. The plain
// password lives only inside the command; the handler hashes it before
// anything is persisted.
type RegisterUserCommand struct {
	name     string
	email    string
	age      int
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand builds the command.
func NewRegisterUserCommand(name, email string, age int, password string) (RegisterUserCommand, error) {
	if name == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("email")
	}
	if age < 0 {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("age")
	}
	if len(password) < minPasswordLength {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("password")
	}

	return RegisterUserCommand{
		name:     name,
		email:    email,
		age:      age,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the unique login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Age returns the stated age.
func (c RegisterUserCommand) Age() int {
	return c.age
}

// Password returns the plain password.
func (c RegisterUserCommand) Password() string {
	return c.password
}
