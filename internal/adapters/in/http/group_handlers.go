package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type createGroupPayload struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

// CreateGroup handles POST /api/v1/groups. Groups default to active.
func (s *Server) CreateGroup(ctx echo.Context) error {
	var payload createGroupPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	cmd, err := commands.NewCreateGroupCommand(payload.Name, active)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateGroup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// SearchGroups handles GET /api/v1/groups?q=fragment.
func (s *Server) SearchGroups(ctx echo.Context) error {
	query, err := queries.NewSearchGroupsQuery(ctx.QueryParam("q"))
	if err != nil {
		return respondError(ctx, err)
	}

	groups, err := s.handlers.SearchGroups.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, groups)
}

type updateGroupPayload struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// UpdateGroup handles PATCH /api/v1/groups/:id.
func (s *Server) UpdateGroup(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid group id")
	}

	var payload updateGroupPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateGroupCommand(id, ports.GroupPatch{
		Name:   payload.Name,
		Active: payload.Active,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateGroup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"updated": updated})
}

// DeleteGroup handles DELETE /api/v1/groups/:id. A group still holding
// products yields a conflict.
func (s *Server) DeleteGroup(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid group id")
	}

	cmd, err := commands.NewDeleteGroupCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err = s.handlers.DeleteGroup.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
