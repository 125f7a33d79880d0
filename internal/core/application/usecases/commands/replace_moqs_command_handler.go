package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// ReplaceMOQsCommandHandler swaps a product's MOQ tier set in one
// transaction: delete all existing tiers, insert the new ones. A missing
// product is an ObjectNotFoundError, never a silent no-op.
type ReplaceMOQsCommandHandler struct {
	uowFactory ProductUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewReplaceMOQsCommandHandler wires the handler.
func NewReplaceMOQsCommandHandler(
	uowFactory ProductUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ReplaceMOQsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ReplaceMOQsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle replaces the tier set atomically.
func (h *ReplaceMOQsCommandHandler) Handle(ctx context.Context, cmd ReplaceMOQsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Existence check runs inside the transaction so the tier swap and
	// the check see the same product row.
	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if _, err := uow.MOQRepository().DeleteByProduct(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if tiers := cmd.Tiers(); len(tiers) > 0 {
		if err := uow.MOQRepository().AddBatch(ctx, cmd.ProductID(), tiers); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicProductEvents, cmd.ProductID(),
		ProductEvent{Type: "product.updated", ProductID: cmd.ProductID()})

	return nil
}
