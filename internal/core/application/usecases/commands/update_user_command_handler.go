package commands

import (
	"context"
	"log/slog"
)

// UpdateUserCommandHandler applies a partial update to a user row. An
// email change colliding with another account surfaces as a
// ConflictError from the repository.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

// NewUpdateUserCommandHandler wires the handler.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory, logger *slog.Logger) UpdateUserCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle applies the patch. An empty patch reports no change.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (bool, error) {
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

	changed, err := uow.UserRepository().UpdatePartial(ctx, cmd.UserID(), cmd.Patch())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return changed, nil
}
