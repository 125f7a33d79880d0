package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order and its detail lines in one
// transaction. Details go first so the foreign key never dangles.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler wires the handler.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the composite delete. It returns whether a row was removed;
// a missing order also carries an ObjectNotFoundError.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
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

	if _, err := uow.OrderDetailRepository().DeleteByOrder(ctx, cmd.OrderID()); err != nil {
		return false, err
	}

	removed, err := uow.OrderRepository().Delete(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if !removed {
		return false, errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicOrderEvents, cmd.OrderID(),
		OrderEvent{Type: "order.deleted", OrderID: cmd.OrderID()})

	return true, nil
}
