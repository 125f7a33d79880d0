package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// CreateProductCommandHandler creates a product with its MOQ tiers and
// images as one atomic unit. Images upload to external storage before the
// transaction; when anything after that fails, the handler rolls back and
// deletes the uploaded references so no orphaned image survives.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	store      ports.ImageStore
	ledger     ports.OrphanImageLedger
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateProductCommandHandler wires the handler. The publisher may be
// nil to disable eventing; a nil logger falls back to slog.Default.
func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateProductCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		ledger:     ledger,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the composite create and returns the new product id.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return 0, err
	}
	if groupID := cmd.GroupID(); groupID != nil {
		if err = p.SetGroup(*groupID); err != nil {
			return 0, err
		}
	}
	if special := cmd.SpecialPrice(); special != nil {
		if err = p.SetSpecialPrice(*special); err != nil {
			return 0, err
		}
	}

	staged, err := stageUploads(ctx, h.store, h.ledger, h.logger, cmd.Uploads())
	if err != nil {
		return 0, err
	}
	for slot, ref := range staged {
		if err = p.SetImage(slot, ref); err != nil {
			releaseImages(ctx, h.store, h.ledger, h.logger, "product create aborted", stagedRefs(staged))
			return 0, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		releaseImages(ctx, h.store, h.ledger, h.logger, "product create aborted", stagedRefs(staged))
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.ProductRepository().Add(ctx, p)
	if err != nil {
		releaseImages(ctx, h.store, h.ledger, h.logger, "product create aborted", stagedRefs(staged))
		return 0, err
	}

	if tiers := cmd.Tiers(); len(tiers) > 0 {
		if err = uow.MOQRepository().AddBatch(ctx, id, tiers); err != nil {
			releaseImages(ctx, h.store, h.ledger, h.logger, "product create aborted", stagedRefs(staged))
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		releaseImages(ctx, h.store, h.ledger, h.logger, "product create aborted", stagedRefs(staged))
		return 0, err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicProductEvents, id,
		ProductEvent{Type: "product.created", ProductID: id})

	return id, nil
}
