package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "processing", order.Processing.String())
	assert.Equal(t, "shipped", order.Shipped.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("processing")
	require.NoError(t, err)
	assert.Equal(t, order.Processing, s)

	_, err = order.ParseStatus("unknown")
	require.Error(t, err)

	_, err = order.ParseStatus("Pending")
	require.Error(t, err, "status strings are lowercase")
}

func TestStatus_TransitionTo(t *testing.T) {
	cases := []struct {
		from, to order.Status
		allowed  bool
	}{
		{order.Pending, order.Processing, true},
		{order.Pending, order.Cancelled, true},
		{order.Pending, order.Shipped, false},
		{order.Pending, order.Delivered, false},
		{order.Processing, order.Shipped, true},
		{order.Processing, order.Cancelled, true},
		{order.Processing, order.Delivered, false},
		{order.Shipped, order.Delivered, true},
		{order.Shipped, order.Cancelled, false},
		{order.Delivered, order.Processing, false},
		{order.Cancelled, order.Pending, false},
		{order.Cancelled, order.Processing, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			} else {
				require.Error(t, err)
				assert.Equal(t, order.Unknown, next)
			}
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("invalid_target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}
