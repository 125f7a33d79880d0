package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// UpdateProductCommandHandler updates a product row, its MOQ tier set and
// its images as one atomic unit.
//
// Image replacement is two-phased: new content is staged to storage before
// the transaction, the row is updated to the new references inside the
// transaction, and only after a successful commit are the old references
// released. A failed transaction releases the staged uploads instead, so
// the row never points at a deleted image and no uploaded-but-unreferenced
// image survives a successful commit.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	store      ports.ImageStore
	ledger     ports.OrphanImageLedger
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateProductCommandHandler wires the handler.
func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory,
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateProductCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		ledger:     ledger,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the composite update. It returns whether the product row
// existed; a missing product also carries an ObjectNotFoundError.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	staged, err := stageUploads(ctx, h.store, h.ledger, h.logger, cmd.Uploads())
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		releaseImages(ctx, h.store, h.ledger, h.logger, "product update aborted", stagedRefs(staged))
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		releaseImages(ctx, h.store, h.ledger, h.logger, "product update aborted", stagedRefs(staged))
		return false, err
	}

	// Remember the references being replaced; they are released only
	// after the commit has made the new references durable.
	replaced := make([]string, 0, len(staged))
	patch := cmd.Patch()
	for slot, ref := range staged {
		if old, slotErr := current.ImageAt(slot); slotErr == nil && old != nil {
			replaced = append(replaced, *old)
		}
		patch.SetImageRef(slot, ref)
	}

	if !patch.IsEmpty() {
		if _, err = uow.ProductRepository().UpdatePartial(ctx, cmd.ProductID(), patch); err != nil {
			releaseImages(ctx, h.store, h.ledger, h.logger, "product update aborted", stagedRefs(staged))
			return false, err
		}
	}

	if cmd.ReplaceTiers() {
		if _, err = uow.MOQRepository().DeleteByProduct(ctx, cmd.ProductID()); err != nil {
			releaseImages(ctx, h.store, h.ledger, h.logger, "product update aborted", stagedRefs(staged))
			return false, err
		}
		if tiers := cmd.Tiers(); len(tiers) > 0 {
			if err = uow.MOQRepository().AddBatch(ctx, cmd.ProductID(), tiers); err != nil {
				releaseImages(ctx, h.store, h.ledger, h.logger, "product update aborted", stagedRefs(staged))
				return false, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		releaseImages(ctx, h.store, h.ledger, h.logger, "product update aborted", stagedRefs(staged))
		return false, err
	}

	releaseImages(ctx, h.store, h.ledger, h.logger, "replaced by product update", replaced)

	publishEvent(ctx, h.publisher, h.logger, ports.TopicProductEvents, cmd.ProductID(),
		ProductEvent{Type: "product.updated", ProductID: cmd.ProductID()})

	return true, nil
}
