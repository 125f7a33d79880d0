package user_test

import (
	"testing"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := user.NewUser("Ada", "ada@example.com", 36, "$2a$10$hash")

		require.NoError(t, err)
		assert.Equal(t, int64(0), u.ID())
		assert.Equal(t, "Ada", u.Name())
		assert.Equal(t, "ada@example.com", u.Email())
		assert.True(t, u.Active())
		require.NoError(t, u.Validate())
	})

	t.Run("name_required", func(t *testing.T) {
		_, err := user.NewUser("", "ada@example.com", 36, "h")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("email_required", func(t *testing.T) {
		_, err := user.NewUser("Ada", "", 36, "h")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed_email_rejected", func(t *testing.T) {
		_, err := user.NewUser("Ada", "not-an-email", 36, "h")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_age_rejected", func(t *testing.T) {
		_, err := user.NewUser("Ada", "ada@example.com", -1, "h")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("hash_required", func(t *testing.T) {
		_, err := user.NewUser("Ada", "ada@example.com", 36, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_Deactivate(t *testing.T) {
	u, err := user.NewUser("Ada", "ada@example.com", 36, "h")
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.Active())

	u.Activate()
	assert.True(t, u.Active())
}

func TestUser_ChangePasswordHash(t *testing.T) {
	u, err := user.NewUser("Ada", "ada@example.com", 36, "old")
	require.NoError(t, err)

	require.Error(t, u.ChangePasswordHash(""))
	require.NoError(t, u.ChangePasswordHash("new"))
	assert.Equal(t, "new", u.PasswordHash())
}

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(4, "Ada", "ada@example.com", 36, "h", false)
	require.NoError(t, err)
	assert.Equal(t, int64(4), u.ID())
	assert.False(t, u.Active())

	_, err = user.RestoreUser(0, "Ada", "ada@example.com", 36, "h", true)
	require.Error(t, err)
}
