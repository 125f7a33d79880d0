// Package http exposes the storefront over echo. Handlers stay thin:
// parse the request, build a command or query, map the error kind to a
// status code.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the HTTP surface exposes.
type Handlers struct {
	CreateProduct         commands.CreateProductCommandHandler
	UpdateProduct         commands.UpdateProductCommandHandler
	DeleteProduct         commands.DeleteProductCommandHandler
	ReplaceMOQs           commands.ReplaceMOQsCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	ChangeOrderStatus     commands.ChangeOrderStatusCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	BulkUpdateOrderStatus commands.BulkUpdateOrderStatusCommandHandler
	BulkCancelOrders      commands.BulkCancelOrdersCommandHandler
	RegisterUser          commands.RegisterUserCommandHandler
	UpdateUser            commands.UpdateUserCommandHandler
	ChangePassword        commands.ChangePasswordCommandHandler
	DeactivateUser        commands.DeactivateUserCommandHandler
	CreateGroup           commands.CreateGroupCommandHandler
	UpdateGroup           commands.UpdateGroupCommandHandler
	DeleteGroup           commands.DeleteGroupCommandHandler

	GetProducts  queries.GetProductsQueryHandler
	GetProduct   queries.GetProductQueryHandler
	GetOrders    queries.GetOrdersQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	SearchGroups queries.SearchGroupsQueryHandler
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/products", s.CreateProduct)
	v1.GET("/products", s.GetProducts)
	v1.GET("/products/:id", s.GetProduct)
	v1.PUT("/products/:id", s.UpdateProduct)
	v1.DELETE("/products/:id", s.DeleteProduct)
	v1.PUT("/products/:id/moqs", s.ReplaceMOQs)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id", s.UpdateOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.PUT("/orders/:id/status", s.ChangeOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.PUT("/orders/status", s.BulkUpdateOrderStatus)
	v1.POST("/orders/cancel", s.BulkCancelOrders)

	v1.POST("/users", s.RegisterUser)
	v1.PATCH("/users/:id", s.UpdateUser)
	v1.PUT("/users/:id/password", s.ChangePassword)
	v1.DELETE("/users/:id", s.DeactivateUser)

	v1.POST("/groups", s.CreateGroup)
	v1.GET("/groups", s.SearchGroups)
	v1.PATCH("/groups/:id", s.UpdateGroup)
	v1.DELETE("/groups/:id", s.DeleteGroup)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application error kinds onto status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrStorageFailure):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathID parses the :id route parameter.
func pathID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// imageOptionsFromQuery reads optional width and height query parameters.
// Absent parameters leave the zero value, meaning the original rendition.
func imageOptionsFromQuery(ctx echo.Context) (ports.ImageOptions, error) {
	var opts ports.ImageOptions

	for _, dim := range []struct {
		name   string
		target *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
	} {
		raw := ctx.QueryParam(dim.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return ports.ImageOptions{}, errs.NewValueIsInvalidError(dim.name)
		}
		*dim.target = value
	}

	return opts, nil
}
