package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDetail(t *testing.T, itemID int64, quantity int, rate, amount float64) order.Detail {
	t.Helper()
	d, err := order.NewDetail(itemID, quantity, rate, amount, 0)
	require.NoError(t, err)
	return d
}

func TestNewCreateOrderCommand_FlatLine(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(3, 7, 2, 4.5, 9.0, "12 Main St", 1.5, "a@b.com", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.CustomerID())
	assert.Equal(t, int64(7), cmd.ItemID())
	assert.Empty(t, cmd.Details())
}

func TestNewCreateOrderCommand_ItemizedForm(t *testing.T) {
	details := []order.Detail{mustDetail(t, 7, 2, 4.5, 9.0)}
	cmd, err := commands.NewCreateOrderCommand(3, 0, 0, 0, 9.0, "12 Main St", 1.5, "a@b.com", details)
	require.NoError(t, err)
	assert.Len(t, cmd.Details(), 1)
}

func TestNewCreateOrderCommand_RequiresItemsOrDetails(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(3, 0, 0, 0, 9.0, "12 Main St", 1.5, "a@b.com", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_RequiresCustomer(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, 7, 2, 4.5, 9.0, "12 Main St", 1.5, "a@b.com", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_RequiresAddressAndEmail(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(3, 7, 2, 4.5, 9.0, "", 1.5, "a@b.com", nil)
	require.Error(t, err)

	_, err = commands.NewCreateOrderCommand(3, 7, 2, 4.5, 9.0, "12 Main St", 1.5, "", nil)
	require.Error(t, err)
}
