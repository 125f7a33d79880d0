package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewBulkUpdateOrderStatusCommand_RejectsCancelledTarget(t *testing.T) {
	_, err := commands.NewBulkUpdateOrderStatusCommand([]int64{1}, order.Cancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewBulkUpdateOrderStatusCommand_RejectsBadIDs(t *testing.T) {
	_, err := commands.NewBulkUpdateOrderStatusCommand([]int64{1, 0}, order.Processing)
	require.Error(t, err)
}

func TestBulkUpdateOrderStatusCommandHandler_Handle_EmptyIDsSkipsTransaction(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkUpdateOrderStatusCommand(nil, order.Processing)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewBulkUpdateOrderStatusCommandHandler(factory, nil, nil)
	affected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, affected)
	factory.AssertNotCalled(t, "Create")
}

func TestBulkUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ids := []int64{1, 2, 3}
	cmd, err := commands.NewBulkUpdateOrderStatusCommand(ids, order.Shipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("BulkUpdateStatus", mock.Anything, ids, order.Shipped).Return(int64(2), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkUpdateOrderStatusCommandHandler(factory, nil, nil)
	affected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBulkCancelOrdersCommandHandler_Handle_EmptyIDsSkipsTransaction(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkCancelOrdersCommand(nil)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewBulkCancelOrdersCommandHandler(factory, nil, nil)
	affected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, affected)
	factory.AssertNotCalled(t, "Create")
}

func TestBulkCancelOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ids := []int64{4, 5}
	cmd, err := commands.NewBulkCancelOrdersCommand(ids)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("BulkCancel", mock.Anything, ids).Return(int64(2), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkCancelOrdersCommandHandler(factory, nil, nil)
	affected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
