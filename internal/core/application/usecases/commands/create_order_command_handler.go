package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// CreateOrderCommandHandler creates an order header with its detail lines
// in one transaction. If any detail insert fails the header never becomes
// visible.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler wires the handler. The publisher may be
// nil to disable eventing; a nil logger falls back to slog.Default.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the composite create and returns the new order id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.ItemID(),
		cmd.Quantity(),
		cmd.Rate(),
		cmd.Amount(),
		cmd.Address(),
		cmd.DeliveryCharge(),
		cmd.Email(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.OrderRepository().Add(ctx, o)
	if err != nil {
		return 0, err
	}

	if details := cmd.Details(); len(details) > 0 {
		if err = uow.OrderDetailRepository().AddBatch(ctx, id, details); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicOrderEvents, id,
		OrderEvent{Type: "order.created", OrderID: id, Status: o.Status().String(), Amount: o.Amount()})

	return id, nil
}
