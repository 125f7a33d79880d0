package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/hash"
)

// RegisterUserCommandHandler creates a user account with a bcrypt-hashed
// password. A duplicate email surfaces from the repository as a
// ConflictError.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewRegisterUserCommandHandler wires the handler.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle registers the account and returns the new user id.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	passwordHash, err := hash.Password(cmd.Password())
	if err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.Name(), cmd.Email(), cmd.Age(), passwordHash)
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

	id, err := uow.UserRepository().Add(ctx, u)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.TopicUserEvents, id,
		UserEvent{Type: "user.registered", UserID: id})

	return id, nil
}
