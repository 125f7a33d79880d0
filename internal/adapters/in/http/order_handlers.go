package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type orderLinePayload struct {
	ItemID         int64   `json:"item_id"`
	Quantity       int     `json:"quantity"`
	Rate           float64 `json:"rate"`
	Amount         float64 `json:"amount"`
	DeliveryCharge float64 `json:"delivery_charge"`
}

type createOrderPayload struct {
	CustomerID     int64              `json:"customer_id"`
	ItemID         int64              `json:"item_id"`
	Quantity       int                `json:"quantity"`
	Rate           float64            `json:"rate"`
	Amount         float64            `json:"amount"`
	Address        string             `json:"address"`
	DeliveryCharge float64            `json:"delivery_charge"`
	Email          string             `json:"email"`
	Details        []orderLinePayload `json:"details"`
}

// CreateOrder handles POST /api/v1/orders. The body carries either a
// single item inline or an itemized details array.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var payload createOrderPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	details := make([]order.Detail, 0, len(payload.Details))
	for _, line := range payload.Details {
		detail, err := order.NewDetail(line.ItemID, line.Quantity, line.Rate, line.Amount, line.DeliveryCharge)
		if err != nil {
			return respondError(ctx, err)
		}
		details = append(details, detail)
	}

	cmd, err := commands.NewCreateOrderCommand(
		payload.CustomerID,
		payload.ItemID,
		payload.Quantity,
		payload.Rate,
		payload.Amount,
		payload.Address,
		payload.DeliveryCharge,
		payload.Email,
		details,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

type updateOrderPayload struct {
	Quantity       *int     `json:"quantity"`
	Rate           *float64 `json:"rate"`
	Amount         *float64 `json:"amount"`
	TransactionRef *string  `json:"transaction_ref"`
	Address        *string  `json:"address"`
	DeliveryCharge *float64 `json:"delivery_charge"`
	Email          *string  `json:"email"`
}

// UpdateOrder handles PATCH /api/v1/orders/:id. Absent fields stay
// untouched.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	var payload updateOrderPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, ports.OrderPatch{
		Quantity:       payload.Quantity,
		Rate:           payload.Rate,
		Amount:         payload.Amount,
		TransactionRef: payload.TransactionRef,
		Address:        payload.Address,
		DeliveryCharge: payload.DeliveryCharge,
		Email:          payload.Email,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"updated": updated})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type changeStatusPayload struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status. Cancellation
// goes through the cancel endpoint, not here.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	var payload changeStatusPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(payload.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type bulkStatusPayload struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

// BulkUpdateOrderStatus handles PUT /api/v1/orders/status.
func (s *Server) BulkUpdateOrderStatus(ctx echo.Context) error {
	var payload bulkStatusPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(payload.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBulkUpdateOrderStatusCommand(payload.IDs, status)
	if err != nil {
		return respondError(ctx, err)
	}

	affected, err := s.handlers.BulkUpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"affected": affected})
}

type bulkCancelPayload struct {
	IDs []int64 `json:"ids"`
}

// BulkCancelOrders handles POST /api/v1/orders/cancel.
func (s *Server) BulkCancelOrders(ctx echo.Context) error {
	var payload bulkCancelPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewBulkCancelOrdersCommand(payload.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	affected, err := s.handlers.BulkCancelOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"affected": affected})
}
