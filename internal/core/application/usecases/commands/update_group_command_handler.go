package commands

import (
	"context"
	"log/slog"
)

// UpdateGroupCommandHandler applies a partial update to a group row.
type UpdateGroupCommandHandler struct {
	uowFactory GroupUoWFactory
	logger     *slog.Logger
}

// NewUpdateGroupCommandHandler wires the handler.
func NewUpdateGroupCommandHandler(uowFactory GroupUoWFactory, logger *slog.Logger) UpdateGroupCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateGroupCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle applies the patch. An empty patch reports no change.
func (h *UpdateGroupCommandHandler) Handle(ctx context.Context, cmd UpdateGroupCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if cmd.Patch().IsEmpty() {
		return false, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	changed, err := uow.GroupRepository().UpdatePartial(ctx, cmd.GroupID(), cmd.Patch())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return changed, nil
}
