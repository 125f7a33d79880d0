package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteProductCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDeleteProductCommand(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.ProductID())
}

func TestNewDeleteProductCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteProductCommand(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteProductCommand_NotConstructed(t *testing.T) {
	var cmd commands.DeleteProductCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteProductCommandIsNotConstructed)
}
