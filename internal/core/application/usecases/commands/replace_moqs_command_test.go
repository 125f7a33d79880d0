package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReplaceMOQsCommand_ValidInput(t *testing.T) {
	tiers := []product.Tier{mustTier(t, 10, 4.5)}
	cmd, err := commands.NewReplaceMOQsCommand(5, tiers)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.ProductID())
	assert.Len(t, cmd.Tiers(), 1)
}

func TestNewReplaceMOQsCommand_EmptyTierListIsValid(t *testing.T) {
	cmd, err := commands.NewReplaceMOQsCommand(5, nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Tiers())
}

func TestNewReplaceMOQsCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewReplaceMOQsCommand(0, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestReplaceMOQsCommand_NotConstructed(t *testing.T) {
	var cmd commands.ReplaceMOQsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReplaceMOQsCommandIsNotConstructed)
}
