// Package user contains the customer account entity. Accounts are never
// hard-deleted: removal deactivates the account by clearing its active
// flag, keeping order history intact.
package user

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered customer account. The password credential is stored
// only as an opaque bcrypt hash; the entity never sees plaintext.
type User struct {
	id           int64
	name         string
	email        string
	age          int
	passwordHash string
	active       bool

	guard guard.ConstructorGuard
}

// NewUser creates an active account. Name, email and the hashed credential
// are required; the email must at least look like an address.
func NewUser(name, email string, age int, passwordHash string) (*User, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("email")
	}
	if age < 0 {
		return nil, errs.NewValueIsInvalidError("age")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return &User{
		name:         name,
		email:        email,
		age:          age,
		passwordHash: passwordHash,
		active:       true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser rebuilds an account from its persisted state.
func RestoreUser(id int64, name, email string, age int, passwordHash string, active bool) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		age:          age,
		passwordHash: passwordHash,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the account was created through a constructor.
func (u *User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the surrogate key, or zero before the first insert.
func (u *User) ID() int64 {
	return u.id
}

// BindID attaches the database-generated identifier after insert.
func (u *User) BindID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if u.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("user already bound to id %d", u.id))
	}
	u.id = id
	return nil
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the unique account email.
func (u *User) Email() string {
	return u.email
}

// Age returns the declared age.
func (u *User) Age() int {
	return u.age
}

// PasswordHash returns the opaque hashed credential.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

// Active reports whether the account is usable.
func (u *User) Active() bool {
	return u.active
}

// Deactivate disables the account. This is the delete operation for users.
func (u *User) Deactivate() {
	u.active = false
}

// Activate re-enables a previously deactivated account.
func (u *User) Activate() {
	u.active = true
}
