package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// BulkUpdateOrderStatusCommandHandler applies one status to many orders in
// a single statement.
type BulkUpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewBulkUpdateOrderStatusCommandHandler wires the handler.
func NewBulkUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) BulkUpdateOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return BulkUpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle returns the number of rows updated. An empty id list succeeds
// with zero without opening a transaction.
func (h *BulkUpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd BulkUpdateOrderStatusCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids := cmd.OrderIDs()
	if len(ids) == 0 {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	affected, err := uow.OrderRepository().BulkUpdateStatus(ctx, ids, cmd.Status())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, id := range ids {
		publishEvent(ctx, h.publisher, h.logger, ports.TopicOrderEvents, id,
			OrderEvent{Type: "order.status_changed", OrderID: id, Status: cmd.Status().String()})
	}

	return affected, nil
}
