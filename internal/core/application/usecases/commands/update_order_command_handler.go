package commands

import (
	"context"
	"log/slog"
)

// UpdateOrderCommandHandler applies a partial update to an order row.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler wires the handler.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle applies the patch. An empty patch reports no change.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (bool, error) {
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

	changed, err := uow.OrderRepository().UpdatePartial(ctx, cmd.OrderID(), cmd.Patch())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return changed, nil
}
