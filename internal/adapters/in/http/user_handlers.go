package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type registerUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var payload registerUserPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(payload.Name, payload.Email, payload.Age, payload.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}

type updateUserPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

// UpdateUser handles PATCH /api/v1/users/:id. The active flag changes
// only through the deactivate endpoint.
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid user id")
	}

	var payload updateUserPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(id, ports.UserPatch{
		Name:  payload.Name,
		Email: payload.Email,
		Age:   payload.Age,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"updated": updated})
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PUT /api/v1/users/:id/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid user id")
	}

	var payload changePasswordPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(id, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateUser handles DELETE /api/v1/users/:id. Accounts are kept and
// deactivated, never removed.
func (s *Server) DeactivateUser(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewDeactivateUserCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeactivateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
