package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/group"
)

// CreateGroupCommandHandler creates a product group.
type CreateGroupCommandHandler struct {
	uowFactory GroupUoWFactory
	logger     *slog.Logger
}

// NewCreateGroupCommandHandler wires the handler.
func NewCreateGroupCommandHandler(uowFactory GroupUoWFactory, logger *slog.Logger) CreateGroupCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateGroupCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle creates the group and returns the new id.
func (h *CreateGroupCommandHandler) Handle(ctx context.Context, cmd CreateGroupCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	g, err := group.NewGroup(cmd.Name())
	if err != nil {
		return 0, err
	}
	if !cmd.Active() {
		g.Deactivate()
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.GroupRepository().Add(ctx, g)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
