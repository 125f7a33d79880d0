package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DeactivateUserCommandHandler retires an account via the repository's
// soft delete.
type DeactivateUserCommandHandler struct {
	uowFactory UserUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeactivateUserCommandHandler wires the handler.
func NewDeactivateUserCommandHandler(
	uowFactory UserUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeactivateUserCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeactivateUserCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle deactivates the account. A missing row is an ObjectNotFoundError.
func (h *DeactivateUserCommandHandler) Handle(ctx context.Context, cmd DeactivateUserCommand) error {
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

	existed, err := uow.UserRepository().Delete(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !existed {
		return errs.NewObjectNotFoundError("userId", cmd.UserID())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicUserEvents, cmd.UserID(),
		UserEvent{Type: "user.deactivated", UserID: cmd.UserID()})

	return nil
}
