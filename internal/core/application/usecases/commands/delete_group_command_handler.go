package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/pkg/errs"
)

// DeleteGroupCommandHandler removes a product group. The membership count
// and the delete run in one transaction so a product assigned concurrently
// cannot slip past the check.
type DeleteGroupCommandHandler struct {
	uowFactory GroupUoWFactory
	logger     *slog.Logger
}

// NewDeleteGroupCommandHandler wires the handler.
func NewDeleteGroupCommandHandler(uowFactory GroupUoWFactory, logger *slog.Logger) DeleteGroupCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeleteGroupCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle removes the group. It returns whether a row was removed; a group
// still referenced by products yields a ConflictError.
func (h *DeleteGroupCommandHandler) Handle(ctx context.Context, cmd DeleteGroupCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.ProductRepository().CountInGroup(ctx, cmd.GroupID())
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, errs.NewConflictErrorWithCause("groupId",
			errors.New("group still has products assigned"))
	}

	removed, err := uow.GroupRepository().Delete(ctx, cmd.GroupID())
	if err != nil {
		return false, err
	}
	if !removed {
		return false, errs.NewObjectNotFoundError("groupId", cmd.GroupID())
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
