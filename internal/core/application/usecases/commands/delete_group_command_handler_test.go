package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteGroupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteGroupCommand(4)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	groupRepo := new(MockGroupRepository)
	uow := new(MockGroupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("CountInGroup", mock.Anything, int64(4)).Return(int64(0), nil).Once(),
		uow.On("GroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Delete", mock.Anything, int64(4)).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGroupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteGroupCommandHandler(factory, nil)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, removed)
	productRepo.AssertExpectations(t)
	groupRepo.AssertExpectations(t)
}

func TestDeleteGroupCommandHandler_Handle_GroupStillReferenced(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteGroupCommand(4)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	productRepo.On("CountInGroup", mock.Anything, int64(4)).Return(int64(3), nil).Once()

	groupRepo := new(MockGroupRepository)
	uow := new(MockGroupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockGroupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteGroupCommandHandler(factory, nil)
	removed, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.False(t, removed)
	assert.ErrorIs(t, err, errs.ErrConflict)
	groupRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteGroupCommandHandler_Handle_MissingGroup(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteGroupCommand(9)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	productRepo.On("CountInGroup", mock.Anything, int64(9)).Return(int64(0), nil).Once()

	groupRepo := new(MockGroupRepository)
	groupRepo.On("Delete", mock.Anything, int64(9)).Return(false, nil).Once()

	uow := new(MockGroupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("GroupRepository").Return(groupRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockGroupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteGroupCommandHandler(factory, nil)
	removed, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.False(t, removed)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
