package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// BulkCancelOrdersCommandHandler cancels many orders in a single
// statement.
type BulkCancelOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewBulkCancelOrdersCommandHandler wires the handler.
func NewBulkCancelOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) BulkCancelOrdersCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return BulkCancelOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle returns the number of rows cancelled. An empty id list succeeds
// with zero without opening a transaction.
func (h *BulkCancelOrdersCommandHandler) Handle(ctx context.Context, cmd BulkCancelOrdersCommand) (int64, error) {
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

	affected, err := uow.OrderRepository().BulkCancel(ctx, ids)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, id := range ids {
		publishEvent(ctx, h.publisher, h.logger, ports.TopicOrderEvents, id,
			OrderEvent{Type: "order.cancelled", OrderID: id, Status: order.Cancelled.String()})
	}

	return affected, nil
}
