package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/hash"
)

// ChangePasswordCommandHandler rotates a password. The current password
// must verify against the stored hash before the new one is written.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewChangePasswordCommandHandler wires the handler.
func NewChangePasswordCommandHandler(
	uowFactory UserUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangePasswordCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle verifies and rotates the password.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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

	u, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if !hash.Verify(u.PasswordHash(), cmd.CurrentPassword()) {
		return errs.NewValueIsInvalidErrorWithCause("currentPassword",
			errors.New("password verification failed"))
	}

	newHash, err := hash.Password(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = u.ChangePasswordHash(newHash); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, u); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicUserEvents, cmd.UserID(),
		UserEvent{Type: "user.password_changed", UserID: cmd.UserID()})

	return nil
}
