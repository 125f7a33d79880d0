package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// DeleteProductCommandHandler removes a product, its MOQ tiers and its
// stored images as one unit. The image deletes run only after the commit;
// until then storage is untouched, so a failed transaction leaves the
// product fully intact.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	store      ports.ImageStore
	ledger     ports.OrphanImageLedger
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeleteProductCommandHandler wires the handler.
func NewDeleteProductCommandHandler(
	uowFactory ProductUoWFactory,
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeleteProductCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		ledger:     ledger,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the composite delete. It returns whether a row was removed;
// a missing product also carries an ObjectNotFoundError.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (bool, error) {
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

	current, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return false, err
	}

	if _, err = uow.MOQRepository().DeleteByProduct(ctx, cmd.ProductID()); err != nil {
		return false, err
	}

	if _, err = uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	releaseImages(ctx, h.store, h.ledger, h.logger, "product deleted", current.ImageRefs())

	publishEvent(ctx, h.publisher, h.logger, ports.TopicProductEvents, cmd.ProductID(),
		ProductEvent{Type: "product.deleted", ProductID: cmd.ProductID()})

	return true, nil
}
