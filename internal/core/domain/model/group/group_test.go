package group_test

import (
	"testing"

	"storefront/internal/core/domain/model/group"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	g, err := group.NewGroup("Hardware")

	require.NoError(t, err)
	assert.Equal(t, int64(0), g.ID())
	assert.Equal(t, "Hardware", g.Name())
	assert.True(t, g.Active())
	require.NoError(t, g.Validate())

	t.Run("name_required", func(t *testing.T) {
		_, err := group.NewGroup("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var g group.Group
		require.ErrorIs(t, g.Validate(), group.ErrGroupIsNotConstructed)
	})
}

func TestGroup_BindID(t *testing.T) {
	g, err := group.NewGroup("Hardware")
	require.NoError(t, err)

	require.NoError(t, g.BindID(3))
	assert.Equal(t, int64(3), g.ID())
	require.Error(t, g.BindID(4))
}

func TestRestoreGroup(t *testing.T) {
	g, err := group.RestoreGroup(3, "Hardware", false)
	require.NoError(t, err)
	assert.False(t, g.Active())

	_, err = group.RestoreGroup(0, "Hardware", true)
	require.Error(t, err)
}
